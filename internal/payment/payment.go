package payment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "go-gin-travel-agency/pkg/app_errors"

	"github.com/shopspring/decimal"
)

// Method 付款方式
type Method string

const (
	MethodCreditCard    Method = "credit_card"
	MethodDigitalWallet Method = "digital_wallet"
	MethodBankTransfer  Method = "bank_transfer"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodDigitalWallet, MethodBankTransfer:
		return true
	}
	return false
}

// Strategy 付款驗證策略。Pay 只檢查自身保存的付款資料格式，不會實際扣款；
// 驗證失敗回傳 false 而不是 error。
type Strategy interface {
	Method() Method
	Pay(amount decimal.Decimal) bool

	sealed()
}

const cardNumberLength = 16

type CreditCard struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

func NewCreditCard(number, holder, expiry, cvv string) *CreditCard {
	return &CreditCard{Number: number, Holder: holder, Expiry: expiry, CVV: cvv}
}

func (c *CreditCard) Method() Method { return MethodCreditCard }

func (c *CreditCard) Pay(_ decimal.Decimal) bool {
	return utf8.RuneCountInString(c.Number) == cardNumberLength &&
		c.Holder != "" && c.Expiry != "" && c.CVV != ""
}

func (c *CreditCard) sealed() {}

type DigitalWallet struct {
	Email string
}

func NewDigitalWallet(email string) *DigitalWallet {
	return &DigitalWallet{Email: email}
}

func (w *DigitalWallet) Method() Method { return MethodDigitalWallet }

// Pay 規則：剛好一個 "."，且不含 "@"。
// 任何正常的 email 都會被拒絕，疑似應為「剛好一個 @」；在產品確認前維持現狀。
func (w *DigitalWallet) Pay(_ decimal.Decimal) bool {
	return strings.Count(w.Email, ".") == 1 && strings.Count(w.Email, "@") == 0
}

func (w *DigitalWallet) sealed() {}

type BankTransfer struct {
	AccountNumber string
	BankName      string
}

func NewBankTransfer(accountNumber, bankName string) *BankTransfer {
	return &BankTransfer{AccountNumber: accountNumber, BankName: bankName}
}

func (b *BankTransfer) Method() Method { return MethodBankTransfer }

func (b *BankTransfer) Pay(_ decimal.Decimal) bool {
	return b.AccountNumber != "" && b.BankName != ""
}

func (b *BankTransfer) sealed() {}

// Details 付款表單資料，依 Method 只使用對應欄位
type Details struct {
	Method        Method `json:"method" binding:"required"`
	CardNumber    string `json:"card_number"`
	CardHolder    string `json:"card_holder"`
	Expiry        string `json:"expiry"`
	CVV           string `json:"cvv"`
	Email         string `json:"email"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
}

// NewStrategy 依付款方式建立對應的策略
func NewStrategy(d Details) (Strategy, error) {
	switch d.Method {
	case MethodCreditCard:
		return NewCreditCard(d.CardNumber, d.CardHolder, d.Expiry, d.CVV), nil
	case MethodDigitalWallet:
		return NewDigitalWallet(d.Email), nil
	case MethodBankTransfer:
		return NewBankTransfer(d.AccountNumber, d.BankName), nil
	default:
		return nil, fmt.Errorf("payment method %q: %w", d.Method, apperrors.ErrUnknownPaymentMethod)
	}
}
