package config

// GenerateSampleConfig returns a commented config file template written
// by `aldo config init`. The hourly rate is a quoted string so the
// decimal value round-trips exactly.
func GenerateSampleConfig() string {
	return `# aldo configuration file

[business]
name = "Your Business Name"
address = "Your Business Address"
email = "your.email@example.com"
phone = ""
tax_id = ""

[client]
name = "Client Company Name"
address = "Client Address"
contact_person = ""
email = ""

[payment]
# Hourly rate as a quoted decimal, e.g. "85.00"
hourly_rate = "50"
currency = "USD"
terms = "Due within 30 days"
bank_name = ""
iban = ""

[invoice]
prefix = "INV-"
next_number = 1000
# Invoice numbers advance by this step on each confirmed invoice
increment = 10
footer_text = "Thank you for your business!"
`
}
