package utils

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

var ErrNoVPA = errors.New("UPI_VPA non configuré")

// UPIPaymentURI construit le lien upi://pay d'un montant en roupies
func UPIPaymentURI(vpa, payee, ref string, amount decimal.Decimal) (string, error) {
	if strings.TrimSpace(vpa) == "" {
		return "", ErrNoVPA
	}
	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", payee)
	q.Set("am", amount.StringFixed(2))
	q.Set("cu", "INR")
	if ref != "" {
		q.Set("tr", ref)
		q.Set("tn", "Order "+ref)
	}
	return "upi://pay?" + q.Encode(), nil
}

// GenerateUPIQR retourne le QR de paiement au format PNG
func GenerateUPIQR(vpa, payee, ref string, amount decimal.Decimal, size int) ([]byte, error) {
	uri, err := UPIPaymentURI(vpa, payee, ref, amount)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(uri, qrcode.Medium, size)
}

// GenerateUPIQRDataURL : QR en base64 prêt à mettre dans <img src="...">
func GenerateUPIQRDataURL(vpa, payee, ref string, amount decimal.Decimal) (string, error) {
	png, err := GenerateUPIQR(vpa, payee, ref, amount, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
