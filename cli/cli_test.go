package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"printverse/auth"
	"printverse/checkout"
	"printverse/domain"
	"printverse/seed"
	"printverse/storage"
	"printverse/store"
)

// capture stdout during cobra execution
func captureOutput(f func() error) (string, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

func run(args ...string) (string, error) {
	return captureOutput(func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

// inject fresh state so PersistentPreRunE will no-op
func setupCLI(t *testing.T) {
	t.Helper()
	shopStore = store.New(storage.NewMemoryBackend(), auth.NewBcryptVerifier(bcrypt.MinCost), slog.Default())
	session = auth.NewSessionManager(filepath.Join(t.TempDir(), "session"), []byte("test-secret"), time.Hour)
	checkoutSvc = checkout.NewService(shopStore, checkout.Options{}, slog.Default())
	t.Cleanup(resetCLI)
}

// reset cobra + global state between tests
func resetCLI() {
	rootCmd.SetArgs(nil)
	shopStore = nil
	session = nil
	checkoutSvc = nil
}

func login(t *testing.T) {
	t.Helper()
	_, err := run("admin", "login",
		"--username", seed.DefaultAdminUsername,
		"--password", seed.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
}

func TestCatalogListAndGet(t *testing.T) {
	setupCLI(t)

	out, err := run("catalog", "list", "--output", "json")
	if err != nil {
		t.Fatalf("catalog list failed: %v", err)
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(out), &products); err != nil {
		t.Fatalf("invalid list output: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 seed products, got %d", len(products))
	}

	out, err = run("catalog", "get", "3")
	if err != nil {
		t.Fatalf("catalog get failed: %v", err)
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("invalid get output: %v", err)
	}
	if p.ID != "3" || p.Price != 120 {
		t.Fatalf("unexpected product: %+v", p)
	}

	// unknown id prints to stderr but does not fail the command
	if _, err := run("catalog", "get", "no-such"); err != nil {
		t.Fatalf("get of unknown id should not error: %v", err)
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	setupCLI(t)

	if _, err := run("cart", "add", "3", "--quantity", "2"); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	if _, err := run("cart", "add", "3", "--quantity", "1"); err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	cart, err := shopStore.Cart(context.Background())
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if len(cart) != 1 || cart[0].Quantity != 3 {
		t.Fatalf("expected one merged line with quantity 3, got %+v", cart)
	}

	out, err := run("checkout",
		"--first-name", "Taras",
		"--last-name", "Koval",
		"--phone", "+380501234567",
		"--address", "Kyiv, Khreshchatyk 1",
		"--delivery", "carrier",
		"--carrier-option", "branch",
		"--city", "Kyiv",
		"--branch", "12",
		"--payment", "card",
	)
	if err != nil {
		t.Fatalf("checkout failed: %v (output %q)", err, out)
	}

	orders, _ := shopStore.Orders(context.Background())
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if orders[0].Total != 360 || orders[0].Status != domain.StatusPending {
		t.Fatalf("unexpected order: %+v", orders[0])
	}
	cart, _ = shopStore.Cart(context.Background())
	if len(cart) != 0 {
		t.Fatalf("cart not cleared: %+v", cart)
	}
}

func TestAdminGate(t *testing.T) {
	setupCLI(t)

	// gated command without a session
	if _, err := run("orders", "list"); err == nil {
		t.Fatalf("expected error for gated command without login")
	}

	// bad credentials
	if _, err := run("admin", "login", "--username", "x", "--password", "y"); err == nil {
		t.Fatalf("expected invalid credentials error")
	}

	login(t)
	if _, err := run("orders", "list"); err != nil {
		t.Fatalf("orders list failed after login: %v", err)
	}

	if _, err := run("admin", "logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := run("orders", "list"); err == nil {
		t.Fatalf("expected error after logout")
	}
}

func TestProductAdminCommands(t *testing.T) {
	setupCLI(t)
	login(t)

	out, err := run("product", "add",
		"--name", "Robot Keychain",
		"--price", "210",
		"--stock", "7",
		"--material", "PLA",
		"--color", "Black",
		"--category", "custom",
		"--new",
	)
	if err != nil {
		t.Fatalf("product add failed: %v", err)
	}
	var created domain.Product
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("invalid add output: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("id not generated: %+v", created)
	}

	out, err = run("product", "update", created.ID, "--price", "199.5")
	if err != nil {
		t.Fatalf("product update failed: %v", err)
	}
	var updated domain.Product
	_ = json.Unmarshal([]byte(out), &updated)
	if updated.Price != 199.5 {
		t.Fatalf("price not updated: %+v", updated)
	}
	if updated.Name != "Robot Keychain" {
		t.Fatalf("unchanged field was clobbered: %+v", updated)
	}

	if _, err := run("product", "delete", "--force", created.ID); err != nil {
		t.Fatalf("product delete failed: %v", err)
	}
	if _, err := shopStore.Product(context.Background(), created.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected product gone, got %v", err)
	}
}

func TestProductAttributeValidation(t *testing.T) {
	setupCLI(t)
	login(t)

	// material must be one of the shop's fixed choices
	if _, err := run("product", "add",
		"--id", "enum-1",
		"--name", "Vibranium Keychain",
		"--price", "500",
		"--material", "Vibranium",
	); err == nil {
		t.Fatalf("expected unknown material to be rejected")
	}
	if _, err := shopStore.Product(context.Background(), "enum-1"); !domain.IsNotFound(err) {
		t.Fatalf("rejected product was stored anyway: %v", err)
	}

	// same gate on update
	if _, err := run("product", "update", "1", "--category", "weapons"); err == nil {
		t.Fatalf("expected unknown category to be rejected")
	}
	p, _ := shopStore.Product(context.Background(), "1")
	if p.Category != "fantasy" {
		t.Fatalf("rejected update mutated the product: %+v", p)
	}

	// known attributes pass
	if _, err := run("product", "add",
		"--id", "enum-2",
		"--name", "Owl Keychain",
		"--price", "130",
		"--material", "TPU",
		"--color", "Purple",
		"--category", "animals",
	); err != nil {
		t.Fatalf("valid attributes rejected: %v", err)
	}
}

func TestOrderStatusCommand(t *testing.T) {
	setupCLI(t)
	login(t)

	// place an order directly through the service
	if err := shopStore.AddToCart(context.Background(), "1", 1); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	order, err := checkoutSvc.PlaceOrder(context.Background(), checkout.Request{
		Customer: domain.CustomerInfo{
			FirstName: "Olha", LastName: "Melnyk",
			Phone: "+380671112233", Address: "Lviv",
		},
		Delivery: domain.DeliveryInfo{
			Method: domain.DeliveryPickup, Location: "Lviv workshop", Contact: "+380671112233",
		},
		PaymentMethod: domain.PaymentCash,
	})
	if err != nil {
		t.Fatalf("setup checkout failed: %v", err)
	}

	if _, err := run("orders", "status", order.ID, "processing"); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	got, _ := shopStore.Order(context.Background(), order.ID)
	if got.Status != domain.StatusProcessing {
		t.Fatalf("status not applied: %+v", got)
	}

	if _, err := run("orders", "status", order.ID, "teleported"); err == nil {
		t.Fatalf("expected error for invalid status")
	}
}

func TestDataExportImport(t *testing.T) {
	setupCLI(t)
	login(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "backup.json")

	if err := shopStore.AddToCart(context.Background(), "5", 4); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := run("data", "export", "--file", file); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// wipe and re-import
	if _, err := run("data", "clear", "--force"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := run("data", "import", "--file", file); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	cart, _ := shopStore.Cart(context.Background())
	if len(cart) != 1 || cart[0].ProductID != "5" || cart[0].Quantity != 4 {
		t.Fatalf("imported cart differs: %+v", cart)
	}

	// a broken payload is rejected
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"products":[]}`), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := run("data", "import", "--file", bad); err == nil {
		t.Fatalf("expected import rejection")
	}
}

func TestSocialCommands(t *testing.T) {
	setupCLI(t)

	out, err := run("social", "list")
	if err != nil {
		t.Fatalf("social list failed: %v", err)
	}
	if out == "" {
		t.Fatalf("expected seed links in output")
	}

	// mutations are gated
	if _, err := run("social", "add", "--name", "TikTok", "--url", "https://tiktok.com/@printverse"); err == nil {
		t.Fatalf("expected gate error without login")
	}

	login(t)
	if _, err := run("social", "add", "--name", "TikTok", "--url", "https://tiktok.com/@printverse"); err != nil {
		t.Fatalf("social add failed: %v", err)
	}
	links, _ := shopStore.SocialLinks(context.Background())
	if len(links) != 4 {
		t.Fatalf("expected 4 links, got %d", len(links))
	}
}

func TestExecuteWrapper(t *testing.T) {
	setupCLI(t)
	rootCmd.SetArgs([]string{"catalog", "list"})
	if _, err := captureOutput(Execute); err != nil {
		t.Fatalf("Execute wrapper failed: %v", err)
	}
}
