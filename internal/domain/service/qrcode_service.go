package service

// QRCodeService generates QR codes for order tracking labels.
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code carrying the order number and
	// tracking number so a courier scan resolves to the order.
	GenerateTrackingQR(orderNumber, trackingNumber string) ([]byte, error)
}
