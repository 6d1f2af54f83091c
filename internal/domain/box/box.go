package box

// ID identifies a physical lock. It is the value printed into the QR code on
// the box.
type ID int64

func (id ID) Int64() int64 {
	return int64(id)
}

// HostID identifies the host that owns a box.
type HostID int64

func (id HostID) Int64() int64 {
	return int64(id)
}

type Box struct {
	ID     ID
	HostID HostID
}
