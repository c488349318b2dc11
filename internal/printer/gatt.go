// Package printer owns the connection to the BLE thermal receipt
// printer: device discovery, the session lifecycle, and the chunked
// write protocol that carries receipt text to the device.
package printer

// PrinterServiceUUID is the generic serial/printing GATT service
// advertised by common thermal printers.
const PrinterServiceUUID = "000018f0-0000-1000-8000-00805f9b34fb"

// DefaultNamePrefixes narrows discovery to the usual thermal-printer
// vendor names when service UUIDs are absent from the advertisement.
var DefaultNamePrefixes = []string{"TP", "Printer", "MTP"}

// Filter describes which devices a scan should match: the well-known
// printer service and/or a set of name prefixes.
type Filter struct {
	ServiceUUID  string
	NamePrefixes []string
}

// DefaultFilter matches the generic printer profile.
func DefaultFilter() Filter {
	return Filter{
		ServiceUUID:  PrinterServiceUUID,
		NamePrefixes: DefaultNamePrefixes,
	}
}

// Device is a handle to a discovered peripheral.
type Device interface {
	Name() string
}

// Client is the narrow platform boundary to the BLE stack. The Link
// is its only consumer; tests substitute a fake.
type Client interface {
	// Scan searches for a device matching the filter. A nil device
	// with a nil error means discovery yielded nothing.
	Scan(filter Filter) (Device, error)
	// ConnectSession establishes a transport-level session.
	ConnectSession(dev Device) (Session, error)
}

// Session is an established GATT connection.
type Session interface {
	// Service resolves a primary service by UUID.
	Service(uuid string) (Service, error)
	// Alive reports whether the transport still considers the
	// session connected. It must ask the transport, not a cache.
	Alive() bool
	Close()
}

// Service is a resolved GATT service.
type Service interface {
	Characteristics() ([]Characteristic, error)
}

// Characteristic is a single writable channel within a service.
type Characteristic interface {
	// Writable reports support for acknowledged or unacknowledged
	// write.
	Writable() bool
	Write(data []byte) error
}
