package asaas

import "encoding/json"

// InvoiceTaxes are the taxes withheld on a service invoice.
type InvoiceTaxes struct {
	RetainIss bool    `json:"retainIss"`
	Iss       float64 `json:"iss"`
	Cofins    float64 `json:"cofins"`
	Csll      float64 `json:"csll"`
	Inss      float64 `json:"inss"`
	Ir        float64 `json:"ir"`
	Pis       float64 `json:"pis"`
}

// Invoice is a service invoice (NFS-e).
type Invoice struct {
	Object               string        `json:"object"`
	ID                   string        `json:"id"`
	Status               string        `json:"status"`
	Customer             string        `json:"customer"`
	Payment              string        `json:"payment"`
	Installment          string        `json:"installment"`
	Type                 string        `json:"type"`
	ServiceDescription   string        `json:"serviceDescription"`
	Observations         string        `json:"observations"`
	Value                float64       `json:"value"`
	Deductions           float64       `json:"deductions"`
	EffectiveDate        string        `json:"effectiveDate"`
	MunicipalServiceID   string        `json:"municipalServiceId"`
	MunicipalServiceCode string        `json:"municipalServiceCode"`
	MunicipalServiceName string        `json:"municipalServiceName"`
	Number               string        `json:"number"`
	ValidationCode       string        `json:"validationCode"`
	PdfURL               string        `json:"pdfUrl"`
	XMLURL               string        `json:"xmlUrl"`
	ExternalReference    string        `json:"externalReference"`
	Taxes                *InvoiceTaxes `json:"taxes"`

	Extra map[string]json.RawMessage `json:"-"`
}

type invoiceAlias Invoice

func (i *Invoice) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*invoiceAlias)(i), &i.Extra)
}

// InvoiceScheduleRequest schedules a service invoice.
type InvoiceScheduleRequest struct {
	ServiceDescription   string  `json:"serviceDescription"`
	Observations         string  `json:"observations"`
	Value                float64 `json:"value"`
	Deductions           float64 `json:"deductions"`
	EffectiveDate        string  `json:"effectiveDate"`
	MunicipalServiceName string  `json:"municipalServiceName"`

	Taxes                *InvoiceTaxes `json:"taxes,omitempty"`
	Payment              *string       `json:"payment,omitempty"`
	Installment          *string       `json:"installment,omitempty"`
	Customer             *string       `json:"customer,omitempty"`
	ExternalReference    *string       `json:"externalReference,omitempty"`
	MunicipalServiceID   *string       `json:"municipalServiceId,omitempty"`
	MunicipalServiceCode *string       `json:"municipalServiceCode,omitempty"`
	UpdatePayment        *bool         `json:"updatePayment,omitempty"`
}

// InvoiceUpdateRequest changes a scheduled invoice.
type InvoiceUpdateRequest struct {
	ServiceDescription   *string       `json:"serviceDescription,omitempty"`
	Observations         *string       `json:"observations,omitempty"`
	Value                *float64      `json:"value,omitempty"`
	Deductions           *float64      `json:"deductions,omitempty"`
	EffectiveDate        *string       `json:"effectiveDate,omitempty"`
	MunicipalServiceName *string       `json:"municipalServiceName,omitempty"`
	ExternalReference    *string       `json:"externalReference,omitempty"`
	Taxes                *InvoiceTaxes `json:"taxes,omitempty"`
}

// InvoiceCancelRequest cancels an issued invoice.
type InvoiceCancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ListInvoicesParams filters Invoices.List.
type ListInvoicesParams struct {
	Pagination
	EffectiveDateGe   *string `url:"effectiveDate[ge]"`
	EffectiveDateLe   *string `url:"effectiveDate[le]"`
	Payment           *string `url:"payment"`
	Installment       *string `url:"installment"`
	ExternalReference *string `url:"externalReference"`
	Customer          *string `url:"customer"`
	Status            *string `url:"status"`
}
