package domain

// Value is the contract every layer's payload type must satisfy. The
// framework never inspects a Value beyond these two methods: Equal drives
// the Transaction diff that decides whether a recomputed fact is "really
// changed" (the cut-off that keeps invalidation minimal), and String gives
// every log line and telemetry vertex a human-readable description without
// the framework needing to know what a ClassSummary or a TypeEnvironment
// entry actually looks like.
type Value interface {
	Equal(other Value) bool
	String() string
}
