package printer

// In-memory GATT stack used by the link and transport tests.

type fakeDevice struct {
	name string
}

func (d *fakeDevice) Name() string { return d.name }

type fakeCharacteristic struct {
	writable bool
	writes   [][]byte
	failAt   int // index of the write that fails; -1 never fails
}

func newFakeCharacteristic() *fakeCharacteristic {
	return &fakeCharacteristic{writable: true, failAt: -1}
}

func (c *fakeCharacteristic) Writable() bool { return c.writable }

func (c *fakeCharacteristic) Write(data []byte) error {
	if c.failAt >= 0 && len(c.writes) == c.failAt {
		return errWriteRefused
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	c.writes = append(c.writes, cp)
	return nil
}

func (c *fakeCharacteristic) written() []byte {
	var all []byte
	for _, w := range c.writes {
		all = append(all, w...)
	}
	return all
}

type fakeService struct {
	chars    []Characteristic
	charsErr error
}

func (s *fakeService) Characteristics() ([]Characteristic, error) {
	if s.charsErr != nil {
		return nil, s.charsErr
	}
	return s.chars, nil
}

type fakeSession struct {
	alive      bool
	closeCount int
	service    *fakeService
	serviceErr error
}

func (s *fakeSession) Service(uuid string) (Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return s.service, nil
}

func (s *fakeSession) Alive() bool { return s.alive }

func (s *fakeSession) Close() {
	s.closeCount++
	s.alive = false
}

type fakeClient struct {
	device     Device
	scanErr    error
	session    *fakeSession
	connectErr error

	// sessions returned so far, to assert release ordering
	handedOut []*fakeSession
}

func (c *fakeClient) Scan(filter Filter) (Device, error) {
	if c.scanErr != nil {
		return nil, c.scanErr
	}
	return c.device, nil
}

func (c *fakeClient) ConnectSession(dev Device) (Session, error) {
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	c.handedOut = append(c.handedOut, c.session)
	return c.session, nil
}

// healthyClient wires a ready-to-print fake stack.
func healthyClient(char *fakeCharacteristic) *fakeClient {
	return &fakeClient{
		device: &fakeDevice{name: "MTP-II"},
		session: &fakeSession{
			alive:   true,
			service: &fakeService{chars: []Characteristic{char}},
		},
	}
}
