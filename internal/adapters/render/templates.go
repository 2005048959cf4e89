package render

// View data contracts. Page controllers fill these; templates only ever
// see these fields.

// ProductPageData drives the payment link landing page.
type ProductPageData struct {
	ProductName string
	Description string
	StartHref   string
	// Amount is the fixed price formatted in pounds, empty for adhoc links
	Amount string
}

// ReferencePageData drives the reference entry page.
type ReferencePageData struct {
	ProductExternalID string
	ProductName       string
	BackLinkHref      string
	ReferenceNumber   string
	ReferenceLabel    string
	ReferenceHint     string
	Errors            map[string]string
}

// AmountPageData drives the amount entry page.
type AmountPageData struct {
	ProductExternalID string
	ProductName       string
	BackLinkHref      string
	// Amount is the raw field value echoed back, or the session amount
	// formatted in pounds on first load
	Amount string
	Errors map[string]string
}

// ReferenceConfirmPageData drives the "that looks like a card number"
// warning page.
type ReferenceConfirmPageData struct {
	ProductName     string
	ReferenceNumber string
	BackLinkHref    string
}

// ConfirmPageData drives the payment summary page.
type ConfirmPageData struct {
	ProductName         string
	ReferenceNumber     string
	Amount              string
	BackLinkHref        string
	ChangeReferenceHref string
	ChangeAmountHref    string
}

// ErrorPageData drives the 404 and 500 pages.
type ErrorPageData struct {
	Message       string
	CorrelationID string
}

const pageStyle = `
    body { font-family: Arial, sans-serif; max-width: 640px; margin: 40px auto; padding: 0 20px; color: #0b0c0c; }
    a.back-link { color: #1d70b8; text-decoration: none; font-size: 16px; }
    h1 { font-size: 32px; margin: 24px 0 16px; }
    .caption { color: #505a5f; font-size: 18px; margin-bottom: 4px; }
    .hint { color: #505a5f; font-size: 16px; margin: 4px 0 8px; }
    .field-error { color: #d4351c; font-weight: bold; margin: 4px 0 8px; }
    .form-group { margin: 16px 0; }
    .form-group.has-error { border-left: 4px solid #d4351c; padding-left: 12px; }
    input[type=text] { font-size: 19px; padding: 6px; width: 100%; max-width: 320px; border: 2px solid #0b0c0c; }
    button { font-size: 19px; padding: 10px 20px; background: #00703c; color: #fff; border: 0; cursor: pointer; }
    .summary { border-top: 1px solid #b1b4b6; }
    .summary-row { display: flex; justify-content: space-between; padding: 12px 0; border-bottom: 1px solid #b1b4b6; }
    .summary-key { color: #505a5f; }
    .warning { border: 4px solid #d4351c; padding: 16px; margin: 16px 0; }
`

const pageTop = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ProductName}}</title>
    <style>` + pageStyle + `</style>
</head>
<body>
`

const pageBottom = `
</body>
</html>
`

var pageTemplates = map[string]string{
	"product/product": pageTop + `
    <p class="caption">Payment for</p>
    <h1>{{.ProductName}}</h1>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
    {{if .Amount}}<p>Total to pay: <strong>&pound;{{.Amount}}</strong></p>{{end}}
    <p><a href="{{.StartHref}}"><button type="button">Continue</button></a></p>
` + pageBottom,

	"reference/reference": pageTop + `
    <a class="back-link" href="{{.BackLinkHref}}">Back</a>
    <p class="caption">{{.ProductName}}</p>
    <h1>{{if .ReferenceLabel}}Enter your {{.ReferenceLabel}}{{else}}Enter your payment reference{{end}}</h1>
    {{if .ReferenceHint}}<p class="hint">{{.ReferenceHint}}</p>{{end}}
    <form method="post" novalidate>
        <div class="form-group{{if .Errors}} has-error{{end}}">
            {{range $field, $message := .Errors}}<p class="field-error">{{$message}}</p>{{end}}
            <input type="text" id="payment-reference" name="payment-reference" value="{{.ReferenceNumber}}" autocomplete="off" spellcheck="false">
        </div>
        <button type="submit">Continue</button>
    </form>
` + pageBottom,

	"reference/reference-confirm": pageTop + `
    <a class="back-link" href="{{.BackLinkHref}}">Back</a>
    <p class="caption">{{.ProductName}}</p>
    <h1>Check your reference</h1>
    <div class="warning">
        <p>The reference you entered, <strong>{{.ReferenceNumber}}</strong>, looks like a card number.</p>
        <p>Do not enter your card details here. You will be asked for them on the next step.</p>
    </div>
    <form method="post" novalidate>
        <button type="submit">Confirm and continue</button>
    </form>
    <p><a href="{{.BackLinkHref}}">Change your reference</a></p>
` + pageBottom,

	"amount/amount": pageTop + `
    <a class="back-link" href="{{.BackLinkHref}}">Back</a>
    <p class="caption">{{.ProductName}}</p>
    <h1>Enter the amount to pay</h1>
    <p class="hint">Amount in pounds, for example 10.50</p>
    <form method="post" novalidate>
        <div class="form-group{{if .Errors}} has-error{{end}}">
            {{range $field, $message := .Errors}}<p class="field-error">{{$message}}</p>{{end}}
            &pound; <input type="text" id="payment-amount" name="payment-amount" value="{{.Amount}}" autocomplete="off" spellcheck="false" inputmode="decimal">
        </div>
        <button type="submit">Continue</button>
    </form>
` + pageBottom,

	"confirm/confirm": pageTop + `
    <a class="back-link" href="{{.BackLinkHref}}">Back</a>
    <p class="caption">{{.ProductName}}</p>
    <h1>Check your payment details</h1>
    <div class="summary">
        {{if .ReferenceNumber}}
        <div class="summary-row">
            <span class="summary-key">Payment reference</span>
            <span>{{.ReferenceNumber}}</span>
            {{if .ChangeReferenceHref}}<a href="{{.ChangeReferenceHref}}">Change</a>{{end}}
        </div>
        {{end}}
        <div class="summary-row">
            <span class="summary-key">Total to pay</span>
            <span><strong>&pound;{{.Amount}}</strong></span>
            {{if .ChangeAmountHref}}<a href="{{.ChangeAmountHref}}">Change</a>{{end}}
        </div>
    </div>
    <form method="post" novalidate>
        <button type="submit">Continue to payment</button>
    </form>
` + pageBottom,

	"error/404": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Page not found</title>
    <style>` + pageStyle + `</style>
</head>
<body>
    <h1>Page not found</h1>
    <p>{{.Message}}</p>
</body>
</html>
`,

	"error/500": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Sorry, there is a problem</title>
    <style>` + pageStyle + `</style>
</head>
<body>
    <h1>Sorry, there is a problem</h1>
    <p>{{.Message}}</p>
    {{if .CorrelationID}}<p class="hint">Reference: {{.CorrelationID}}</p>{{end}}
</body>
</html>
`,
}
