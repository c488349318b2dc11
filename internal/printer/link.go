package printer

import (
	"context"
	"sync"

	"emrys-pos/internal/logger"

	"go.uber.org/zap"
)

// State is the link's position in its connection lifecycle.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateReady        State = "ready"
)

// Link owns the single printer connection: at most one session and
// one chosen characteristic exist process-wide, and every write goes
// through this type. The mutex serializes connect, disconnect and
// send — one operation in flight at a time.
type Link struct {
	mu      sync.Mutex
	client  Client
	filter  Filter
	state   State
	session Session
	channel Characteristic
	device  string
	log     *zap.Logger
}

func NewLink(client Client, filter Filter) *Link {
	return &Link{
		client: client,
		filter: filter,
		state:  StateDisconnected,
		log:    logger.Named("printer"),
	}
}

// Connect discovers a printer, establishes a session, resolves the
// printer service and selects its first writable characteristic. Any
// session held from a previous connect is released first. On failure
// the link is left Disconnected.
func (l *Link) Connect(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session != nil {
		l.releaseLocked()
	}

	l.state = StateConnecting
	l.log.Info("scanning for printer",
		zap.String("service_uuid", l.filter.ServiceUUID),
		zap.Strings("name_prefixes", l.filter.NamePrefixes),
	)

	dev, err := l.client.Scan(l.filter)
	if err != nil || dev == nil {
		l.state = StateDisconnected
		l.log.Warn("printer discovery failed", zap.Error(err))
		return ErrDeviceNotFound
	}

	session, err := l.client.ConnectSession(dev)
	if err != nil {
		l.state = StateDisconnected
		l.log.Warn("gatt connect failed",
			zap.String("device", dev.Name()),
			zap.Error(err),
		)
		return ErrGATTConnect
	}

	svc, err := session.Service(l.filter.ServiceUUID)
	if err != nil {
		session.Close()
		l.state = StateDisconnected
		return ErrServiceUnavailable
	}

	chars, err := svc.Characteristics()
	if err != nil {
		session.Close()
		l.state = StateDisconnected
		return ErrServiceUnavailable
	}

	var channel Characteristic
	for _, c := range chars {
		if c.Writable() {
			channel = c
			break
		}
	}
	if channel == nil {
		session.Close()
		l.state = StateDisconnected
		return ErrNoWritableChannel
	}

	l.session = session
	l.channel = channel
	l.device = dev.Name()
	l.state = StateReady

	l.log.Info("printer connected", zap.String("device", l.device))
	return nil
}

// Disconnect tears down the session if one is held. Idempotent.
func (l *Link) Disconnect() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session != nil {
		l.releaseLocked()
		l.log.Info("printer disconnected", zap.String("device", l.device))
	}
	l.state = StateDisconnected
}

// releaseLocked closes the held session. Caller holds l.mu.
func (l *Link) releaseLocked() {
	l.session.Close()
	l.session = nil
	l.channel = nil
	l.state = StateDisconnected
}

// IsReady reports whether a session is held and the transport still
// considers it connected. The physical link can drop without any
// event, so the transport is asked every time; polling this has no
// side effect on the link.
func (l *Link) IsReady() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readyLocked()
}

func (l *Link) readyLocked() bool {
	return l.session != nil && l.session.Alive()
}

// State returns the lifecycle state for status display. A held
// session whose transport has dropped reports Disconnected.
func (l *Link) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == StateReady && !l.readyLocked() {
		return StateDisconnected
	}
	return l.state
}

// DeviceName returns the name of the connected printer, empty when
// disconnected.
func (l *Link) DeviceName() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.session == nil {
		return ""
	}
	return l.device
}
