package entity

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentGPay PaymentMethod = "gpay"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentGPay, PaymentUPI:
		return true
	}
	return false
}
