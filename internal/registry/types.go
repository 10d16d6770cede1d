package registry

// Response shapes for the Companies House public data API. Only the fields
// the tool displays or stores are mapped; everything else passes through
// untouched on the wire.

// Profile is the /company/{crn} response.
type Profile struct {
	CompanyName           string   `json:"company_name"`
	CompanyStatus         string   `json:"company_status"`
	DateOfCreation        string   `json:"date_of_creation"`
	SICCodes              []string `json:"sic_codes"`
	Accounts              Filing   `json:"accounts"`
	ConfirmationStatement Filing   `json:"confirmation_statement"`
	RegisteredOffice      Address  `json:"registered_office_address"`
}

// Filing carries the next due date for a statutory filing.
type Filing struct {
	NextDue string `json:"next_due"`
}

// Address is a registered office address.
type Address struct {
	Line1    string `json:"address_line_1"`
	Line2    string `json:"address_line_2"`
	Locality string `json:"locality"`
	Postcode string `json:"postal_code"`
	Country  string `json:"country"`
}

// Lines returns the non-empty address lines in display order.
func (a Address) Lines() []string {
	var lines []string
	for _, l := range []string{a.Line1, a.Line2, a.Locality, a.Postcode, a.Country} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// OfficerList is the /company/{crn}/officers response.
type OfficerList struct {
	Items []Officer `json:"items"`
}

// Officer is one appointment in the officers list.
type Officer struct {
	Name        string `json:"name"`
	Role        string `json:"officer_role"`
	AppointedOn string `json:"appointed_on"`
	ResignedOn  string `json:"resigned_on"`
}

// ChargeList is the /company/{crn}/charges response.
type ChargeList struct {
	TotalCount int      `json:"total_count"`
	Items      []Charge `json:"items"`
}

// Charge is one registered charge.
type Charge struct {
	Status         string `json:"status"`
	CreatedOn      string `json:"created_on"`
	SecuredDetails struct {
		Description string `json:"description"`
	} `json:"secured_details"`
}

// FilingList is the /company/{crn}/filing-history response.
type FilingList struct {
	Items []FilingEvent `json:"items"`
}

// FilingEvent is one filing-history entry.
type FilingEvent struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
