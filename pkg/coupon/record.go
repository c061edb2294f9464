package coupon

import "fmt"

// Record is a synthesized deal. It is built per request and never stored.
type Record struct {
	Code       string `json:"code"`
	Discount   string `json:"discount"`
	Store      string `json:"store"`
	Details    string `json:"details"`
	ExpiryDate string `json:"expiry_date"`
	Tip        string `json:"tip"`
}

func (r Record) Format() string {
	return fmt.Sprintf("🏷️ CODE: %s\n💰 DISCOUNT: %s\n🛍️ STORE: %s\n📝 DETAILS: %s\n⏰ VALID TILL: %s\n💡 TIP: %s",
		r.Code, r.Discount, r.Store, r.Details, r.ExpiryDate, r.Tip)
}

// Deal is the record with the friendly sentence shown above it.
type Deal struct {
	StoreID  string
	Intro    string
	Record   Record
	Degraded bool // the tip or the intro is a fixed fallback
}

func (d Deal) String() string {
	return d.Intro + "\n\n" + d.Record.Format()
}
