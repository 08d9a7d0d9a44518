package store

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SnapshotKey is the fixed key the whole state is persisted under.
const SnapshotKey = "diamond-store"

const snapshotVersion = 0

type Sequences struct {
	Order   int `json:"order"`
	Payment int `json:"payment"`
	Package int `json:"package"`
}

type State struct {
	Orders          []Order          `json:"orders"`
	PaymentMethods  []PaymentMethod  `json:"paymentMethods"`
	DiamondPackages []DiamondPackage `json:"diamondPackages"`
	SystemSettings  SystemSettings   `json:"systemSettings"`
	ActivityLogs    []ActivityLog    `json:"activityLogs"`
	Sequences       Sequences        `json:"sequences"`
}

type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

func encodeState(st State) ([]byte, error) {
	return json.Marshal(envelope{State: st, Version: snapshotVersion})
}

func decodeState(blob []byte) (State, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return State{}, fmt.Errorf("decode snapshot: %w", err)
	}
	st := env.State
	if st.Orders == nil {
		st.Orders = []Order{}
	}
	if st.PaymentMethods == nil {
		st.PaymentMethods = []PaymentMethod{}
	}
	if st.DiamondPackages == nil {
		st.DiamondPackages = []DiamondPackage{}
	}
	if st.ActivityLogs == nil {
		st.ActivityLogs = []ActivityLog{}
	}
	st.Sequences = reconcileSequences(st)
	return st, nil
}

var idSuffix = regexp.MustCompile(`(\d+)$`)

// reconcileSequences keeps persisted counters but never lets them fall below
// the highest numeric suffix already in use, so snapshots written without
// counters cannot hand out an existing identifier again.
func reconcileSequences(st State) Sequences {
	seq := st.Sequences
	for _, o := range st.Orders {
		seq.Order = max(seq.Order, suffixOf(o.ID))
	}
	for _, p := range st.PaymentMethods {
		seq.Payment = max(seq.Payment, suffixOf(p.ID))
	}
	for _, d := range st.DiamondPackages {
		seq.Package = max(seq.Package, suffixOf(d.ID))
	}
	return seq
}

func suffixOf(id string) int {
	m := idSuffix.FindString(id)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// logStamp returns the millisecond stamp encoded in a log id. Ids may run
// ahead of their timestamps after same-millisecond bumps.
func logStamp(entry ActivityLog) int64 {
	ms := entry.Timestamp.UnixMilli()
	if n, err := strconv.ParseInt(strings.TrimPrefix(entry.ID, "LOG"), 10, 64); err == nil {
		ms = max(ms, n)
	}
	return ms
}

func formatID(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}
