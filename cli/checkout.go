package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"printverse/checkout"
	"printverse/domain"
)

func init() {
	var (
		firstName, lastName, phone, address          string
		differentRecipient                           bool
		recipFirst, recipLast, recipPhone            string
		delivery, carrierOption, city, branch        string
		pickupLocation, pickupContact, paymentMethod string
	)

	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the current cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := checkout.Request{
				Customer: domain.CustomerInfo{
					FirstName:          firstName,
					LastName:           lastName,
					Phone:              phone,
					Address:            address,
					DifferentRecipient: differentRecipient,
				},
				Delivery: domain.DeliveryInfo{
					Method:        delivery,
					CarrierOption: carrierOption,
					City:          city,
					Branch:        branch,
					Location:      pickupLocation,
					Contact:       pickupContact,
				},
				PaymentMethod: paymentMethod,
			}
			if differentRecipient {
				req.Customer.Recipient = &domain.RecipientInfo{
					FirstName: recipFirst,
					LastName:  recipLast,
					Phone:     recipPhone,
				}
			}

			order, err := checkoutSvc.PlaceOrder(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Printf("order %s placed: %d line(s), total %.2f, status %s\n",
				order.ID, len(order.Items), order.Total, order.Status)
			return nil
		},
	}

	checkoutCmd.Flags().StringVar(&firstName, "first-name", "", "customer first name")
	checkoutCmd.Flags().StringVar(&lastName, "last-name", "", "customer last name")
	checkoutCmd.Flags().StringVar(&phone, "phone", "", "customer phone")
	checkoutCmd.Flags().StringVar(&address, "address", "", "customer address")
	checkoutCmd.Flags().BoolVar(&differentRecipient, "different-recipient", false, "ship to somebody else")
	checkoutCmd.Flags().StringVar(&recipFirst, "recipient-first-name", "", "recipient first name")
	checkoutCmd.Flags().StringVar(&recipLast, "recipient-last-name", "", "recipient last name")
	checkoutCmd.Flags().StringVar(&recipPhone, "recipient-phone", "", "recipient phone")
	checkoutCmd.Flags().StringVar(&delivery, "delivery", domain.DeliveryCarrier, "delivery method: carrier|pickup")
	checkoutCmd.Flags().StringVar(&carrierOption, "carrier-option", domain.CarrierBranch, "carrier option: branch|locker|courier")
	checkoutCmd.Flags().StringVar(&city, "city", "", "carrier delivery city")
	checkoutCmd.Flags().StringVar(&branch, "branch", "", "carrier branch or locker number")
	checkoutCmd.Flags().StringVar(&pickupLocation, "pickup-location", "", "pickup meeting location")
	checkoutCmd.Flags().StringVar(&pickupContact, "pickup-contact", "", "pickup contact")
	checkoutCmd.Flags().StringVar(&paymentMethod, "payment", domain.PaymentCard, "payment method: cash|card")

	rootCmd.AddCommand(checkoutCmd)
}
