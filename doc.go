// Package asaas provides a Go client SDK for the Asaas payments API.
//
// Every resource is exposed as a service on [Client]: charges, customers,
// subscriptions, Pix, transfers, invoices, account management and the rest.
// Requests are retried according to a [RetryPolicy] and failures are
// returned as *[Error].
//
// Basic usage:
//
//	client := asaas.New(
//	    asaas.WithAPIKey(os.Getenv("ASAAS_API_KEY")),
//	    asaas.WithEnvironment(asaas.Sandbox),
//	)
//
//	// Create a customer
//	customer, err := client.Customers.Create(ctx, &asaas.CustomerCreateRequest{
//	    Name:    "Marcelo Almeida",
//	    CpfCnpj: "24971563792",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Charge them by Pix
//	payment, err := client.Payments.Create(ctx, &asaas.PaymentCreateRequest{
//	    Customer:    customer.ID,
//	    BillingType: asaas.BillingTypePix,
//	    Value:       129.9,
//	    DueDate:     "2026-11-10",
//	})
//	if err != nil {
//	    var apiErr *asaas.Error
//	    if errors.As(err, &apiErr) {
//	        for _, item := range asaas.ValidationErrors(err) {
//	            fmt.Println(item.Code, item.Description)
//	        }
//	    }
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Invoice:", payment.InvoiceURL)
//
// Fields the API returns but the SDK does not model are kept in each
// response's Extra map.
package asaas
