package pairing

// Orientation selects which pairing-group elements carry signatures and
// which carry verification keys. spec.md requires this choice be made
// exactly once and be mutually exclusive; enabling both is a build error
// in the original Rust source's Cargo feature flags. Go has no equivalent
// of mutually exclusive build features for a single compiled artifact in
// the way that matters here, so this repo follows drand/drand's own
// pattern of modelling a fixed cryptographic choice as a single package
// constant (see crypto.Scheme.SigGroup/KeyGroup in the teacher) rather
// than threading a type parameter through every signature: ActiveOrientation
// is assigned once, below, and every caller in this module resolves
// SigGroup/VerkeyGroup from it.
type Orientation int

const (
	// SigInG1 places signatures in G1 and verification-key elements in G2.
	SigInG1 Orientation = iota
	// SigInG2 places signatures in G2 and verification-key elements in G1,
	// matching the layout drand/drand's default "pedersen-bls-chained"
	// scheme uses (48-byte keys, 96-byte signatures).
	SigInG2
)

// ActiveOrientation is the one compiled-in choice for this build. Changing
// it is a one-line edit and a recompile: the Go-native reading of "a
// compile-time constant of the binary" from spec.md §9.
const ActiveOrientation = SigInG2

func (o Orientation) String() string {
	if o == SigInG1 {
		return "sig-in-g1"
	}
	return "sig-in-g2"
}
