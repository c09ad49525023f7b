package qrcode

import (
	"encoding/json"
	"fmt"

	"sheshape/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TrackingQRData is the payload encoded into tracking label QR codes. A
// courier scan resolves the order through the order number; the tracking
// number ties the label to the carrier shipment.
type TrackingQRData struct {
	OrderNumber    string `json:"order_number"`
	TrackingNumber string `json:"tracking_number"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTrackingQR renders a PNG QR code carrying the order number and
// tracking number.
func (s *qrcodeService) GenerateTrackingQR(orderNumber, trackingNumber string) ([]byte, error) {
	data := TrackingQRData{
		OrderNumber:    orderNumber,
		TrackingNumber: trackingNumber,
		Type:           "order_tracking",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
