package valueobjects

type TxState string

const (
	TxStateDraft      TxState = "draft"
	TxStatePending    TxState = "pending"
	TxStateAuthorized TxState = "authorized"
	TxStateDone       TxState = "done"
	TxStateError      TxState = "error"
	TxStateCancel     TxState = "cancel"
	// TxStateRefunding is reserved for the refund flow, which is not
	// implemented; no transition currently enters it.
	TxStateRefunding TxState = "refunding"
)

func (s TxState) IsValid() bool {
	switch s {
	case TxStateDraft, TxStatePending, TxStateAuthorized, TxStateDone, TxStateError, TxStateCancel, TxStateRefunding:
		return true
	default:
		return false
	}
}

// IsResolvable reports whether a gateway response may still change this
// state. Anything outside draft/pending/refunding has already been
// resolved once and stays authoritative.
func (s TxState) IsResolvable() bool {
	return s == TxStateDraft || s == TxStatePending || s == TxStateRefunding
}

func (s TxState) IsPending() bool {
	return s == TxStatePending
}

func (s TxState) String() string {
	return string(s)
}
