package services

import (
	"fmt"
	"strings"

	"github.com/leekchan/accounting"
	"github.com/yaarastore/backend/app/models"
)

// EmailStrings holds the localized copy for the order confirmation mail.
type EmailStrings struct {
	SubjectPrefix    string
	Greeting         string
	Confirmation     string
	OrderNumberLabel string
	TotalLabel       string
	Thanks           string
	ImageHeader      string
	ProductHeader    string
	QuantityHeader   string
	PriceHeader      string
	LineTotalHeader  string
	Dir              string
	Align            string
}

var hebrewEmail = EmailStrings{
	SubjectPrefix:    "אישור הזמנה - מס'",
	Greeting:         "שלום",
	Confirmation:     "ההזמנה שלך התקבלה בהצלחה.",
	OrderNumberLabel: "מספר הזמנה:",
	TotalLabel:       `סה"כ לתשלום:`,
	Thanks:           "תודה שקנית אצלנו 💚",
	ImageHeader:      "תמונה",
	ProductHeader:    "מוצר",
	QuantityHeader:   "כמות",
	PriceHeader:      "מחיר",
	LineTotalHeader:  `סה"כ`,
	Dir:              "rtl",
	Align:            "right",
}

var englishEmail = EmailStrings{
	SubjectPrefix:    "Order confirmation - no.",
	Greeting:         "Hello",
	Confirmation:     "Your order has been received.",
	OrderNumberLabel: "Order number:",
	TotalLabel:       "Total due:",
	Thanks:           "Thank you for shopping with us 💚",
	ImageHeader:      "Image",
	ProductHeader:    "Product",
	QuantityHeader:   "Qty",
	PriceHeader:      "Price",
	LineTotalHeader:  "Total",
	Dir:              "ltr",
	Align:            "left",
}

// EmailStringsFor selects the message template set. Hebrew is the default.
func EmailStringsFor(locale string) EmailStrings {
	if locale == "en" {
		return englishEmail
	}
	return hebrewEmail
}

var shekel = accounting.Accounting{Symbol: "₪", Precision: 2}

// OrderEmailHTML renders the confirmation body for a persisted order.
func OrderEmailHTML(order *models.Order, str EmailStrings) string {
	var items strings.Builder
	for _, item := range order.Items {
		items.WriteString(fmt.Sprintf(`
    <tr style="border-bottom: 1px solid #ddd; text-align: center;">
      <td style="padding: 8px;"><img src="%s" alt="%s" width="50" height="50" style="border-radius: 4px; object-fit: cover;" /></td>
      <td style="padding: 8px;">%s</td>
      <td style="padding: 8px;">%d</td>
      <td style="padding: 8px;">%s</td>
      <td style="padding: 8px;"><strong>%s</strong></td>
    </tr>
`,
			item.ImageURL, item.ImageAlt, item.Title, item.Quantity,
			shekel.FormatMoneyDecimal(item.UnitAmount),
			shekel.FormatMoneyDecimal(item.TotalAmount)))
	}

	return fmt.Sprintf(`
    <div dir="%s" style="font-family: sans-serif; padding: 20px; max-width: 600px; margin: auto;">
      <h2 style="margin-bottom: 10px;">%s %s,</h2>
      <p style="margin: 0 0 20px 0;">%s</p>

      <table cellpadding="0" cellspacing="0" style="width: 100%%; border-collapse: collapse; font-size: 14px;">
        <thead style="background-color: #f5f5f5;">
          <tr style="text-align: center;">
            <th style="padding: 10px;">%s</th>
            <th style="padding: 10px;">%s</th>
            <th style="padding: 10px;">%s</th>
            <th style="padding: 10px;">%s</th>
            <th style="padding: 10px;">%s</th>
          </tr>
        </thead>
        <tbody>
          %s
        </tbody>
      </table>

      <h3 style="margin-top: 20px; text-align: %s;">%s %s</h3>
      <p style="text-align: %s;">%s <strong>#%d</strong></p>
      <p style="text-align: %s;">%s</p>
    </div>
`,
		str.Dir,
		str.Greeting, order.Name,
		str.Confirmation,
		str.ImageHeader, str.ProductHeader, str.QuantityHeader, str.PriceHeader, str.LineTotalHeader,
		items.String(),
		str.Align, str.TotalLabel, shekel.FormatMoneyDecimal(order.Cost),
		str.Align, str.OrderNumberLabel, order.ID,
		str.Align, str.Thanks)
}
