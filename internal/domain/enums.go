package domain

type StopReason string

const (
	// StopExpired means the countdown reached zero on its own.
	StopExpired StopReason = "expired"
	// StopExplicit means the user ended the session before expiry.
	StopExplicit StopReason = "stopped"
)

type BlockKind string

const (
	BlockApp  BlockKind = "app"
	BlockSite BlockKind = "site"
)

// ValidBlockKinds is the canonical set of accepted blocklist kind strings.
var ValidBlockKinds = map[string]bool{
	"app": true, "site": true,
}
