package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/q-allen/E-Commerce-Timepiece-WatchStore/internal/domain"
)

func money(d decimal.Decimal) string {
	return "₱" + d.StringFixed(2)
}

func renderProducts(w io.Writer, products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category.Name, money(p.Price), p.Stock)
	}
	tw.Flush()
}

func renderCart(w io.Writer, items []domain.CartItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tTOTAL")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", item.ID, item.ProductName, item.Quantity, money(item.TotalPrice))
	}
	tw.Flush()
}

func renderCartWithTotal(w io.Writer, items []domain.CartItem, total decimal.Decimal) {
	renderCart(w, items)
	if len(items) > 0 {
		fmt.Fprintf(w, "Total Cost: %s\n", money(total))
	}
}

func renderOrders(w io.Writer, orders []domain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	for i, o := range orders {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Order #%d  %s  %s  %s  placed %s\n",
			o.ID, o.Status, money(o.TotalPrice), o.PaymentMethod, o.CreatedAt.Format("2006-01-02 15:04"))
		for _, item := range o.Items {
			fmt.Fprintf(w, "  %s x%d  %s\n", item.ProductName, item.Quantity, money(item.Price))
		}
	}
}

func renderProfile(w io.Writer, u *domain.User) {
	fmt.Fprintf(w, "Username: %s\n", u.Username)
	name := u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}
	if u.LastName != "" {
		name += " " + u.LastName
	}
	fmt.Fprintf(w, "Name:     %s\n", name)
	fmt.Fprintf(w, "Email:    %s\n", u.Email)
	if u.Contact != "" {
		fmt.Fprintf(w, "Contact:  %s\n", u.Contact)
	}
	if u.Address != "" {
		fmt.Fprintf(w, "Address:  %s\n", u.Address)
	}
}
