package printer

import (
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"
)

// scanWindow bounds discovery; tinygo's Scan otherwise blocks until
// StopScan is called.
const scanWindow = 10 * time.Second

// BLEClient adapts tinygo.org/x/bluetooth to the Client boundary so
// the Link can drive real hardware.
type BLEClient struct {
	adapter *bluetooth.Adapter

	mu        sync.Mutex
	connected map[string]bool
}

// NewBLEClient enables the default adapter and starts tracking
// connection events; the stack reports disconnects through the
// connect handler, which is the only live signal available.
func NewBLEClient() (*BLEClient, error) {
	c := &BLEClient{
		adapter:   bluetooth.DefaultAdapter,
		connected: make(map[string]bool),
	}

	if err := c.adapter.Enable(); err != nil {
		return nil, err
	}

	c.adapter.SetConnectHandler(func(device bluetooth.Device, connected bool) {
		c.mu.Lock()
		c.connected[device.Address.String()] = connected
		c.mu.Unlock()
	})

	return c, nil
}

func (c *BLEClient) isConnected(addr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected[addr]
}

type bleDevice struct {
	name    string
	address bluetooth.Address
}

func (d *bleDevice) Name() string { return d.name }

func (c *BLEClient) Scan(filter Filter) (Device, error) {
	uuid, err := bluetooth.ParseUUID(filter.ServiceUUID)
	if err != nil {
		return nil, err
	}

	stop := time.AfterFunc(scanWindow, func() {
		_ = c.adapter.StopScan()
	})
	defer stop.Stop()

	var found *bleDevice
	err = c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
		name := result.LocalName()
		if !result.HasServiceUUID(uuid) && !matchesPrefix(name, filter.NamePrefixes) {
			return
		}
		found = &bleDevice{name: name, address: result.Address}
		_ = adapter.StopScan()
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}
	return found, nil
}

func matchesPrefix(name string, prefixes []string) bool {
	if name == "" {
		return false
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func (c *BLEClient) ConnectSession(dev Device) (Session, error) {
	d, ok := dev.(*bleDevice)
	if !ok {
		return nil, ErrGATTConnect
	}

	device, err := c.adapter.Connect(d.address, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.connected[d.address.String()] = true
	c.mu.Unlock()

	return &bleSession{client: c, device: device, addr: d.address.String()}, nil
}

type bleSession struct {
	client *BLEClient
	device bluetooth.Device
	addr   string
}

func (s *bleSession) Service(uuid string) (Service, error) {
	u, err := bluetooth.ParseUUID(uuid)
	if err != nil {
		return nil, err
	}

	services, err := s.device.DiscoverServices([]bluetooth.UUID{u})
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, ErrServiceUnavailable
	}
	return &bleService{service: services[0]}, nil
}

func (s *bleSession) Alive() bool {
	return s.client.isConnected(s.addr)
}

func (s *bleSession) Close() {
	_ = s.device.Disconnect()

	s.client.mu.Lock()
	s.client.connected[s.addr] = false
	s.client.mu.Unlock()
}

type bleService struct {
	service bluetooth.DeviceService
}

func (s *bleService) Characteristics() ([]Characteristic, error) {
	chars, err := s.service.DiscoverCharacteristics(nil)
	if err != nil {
		return nil, err
	}

	out := make([]Characteristic, 0, len(chars))
	for _, c := range chars {
		out = append(out, &bleCharacteristic{char: c})
	}
	return out, nil
}

type bleCharacteristic struct {
	char bluetooth.DeviceCharacteristic
}

// Writable is optimistic: tinygo does not expose property flags, and
// every characteristic on the generic printer service accepts
// unacknowledged writes in practice.
func (c *bleCharacteristic) Writable() bool { return true }

func (c *bleCharacteristic) Write(data []byte) error {
	_, err := c.char.WriteWithoutResponse(data)
	return err
}
