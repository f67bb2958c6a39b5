package audio

//go:generate enumer -type=State -trimprefix=State
//go:generate go run github.com/towelWet/TowelHost/tools/enumerfix state_enumer.go

// State is the lifecycle state of a Bridge.
type State int

const (
	// StateUninitialized is the state before Initialize.
	StateUninitialized State = iota

	// StateInitialized means the device was opened, or opening it failed.
	StateInitialized

	// StateRunning means the bridge is registered with the device.
	StateRunning

	// StateStopped means the bridge was unregistered after running.
	StateStopped
)
