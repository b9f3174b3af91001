package models

type Address struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Street    string `json:"street"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

// AddressDraft is a new address before the book assigns its id and default flag.
type AddressDraft struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Street  string `json:"street" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

// AddressPatch is a partial edit; the default flag is changed with SetDefault only.
type AddressPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Street  *string `json:"street,omitempty"`
	Line2   *string `json:"line2,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Pincode *string `json:"pincode,omitempty"`
}

func (patch AddressPatch) Apply(a Address) Address {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.Name, patch.Name)
	set(&a.Phone, patch.Phone)
	set(&a.Email, patch.Email)
	set(&a.Street, patch.Street)
	set(&a.Line2, patch.Line2)
	set(&a.City, patch.City)
	set(&a.State, patch.State)
	set(&a.Pincode, patch.Pincode)
	return a
}
