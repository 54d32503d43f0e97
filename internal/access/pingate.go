package access

// PinGate is the per-viewing-session state machine guarding a PIN-protected
// shared list. It starts Unlocked when the person has no pin, otherwise
// Locked. Digits are captured one at a time; only a full-length candidate
// is evaluated. A mismatch raises the LastAttemptFailed signal and clears
// the captured input so the visitor can try again. Unlocking is terminal
// for the session; there is no re-lock and no attempt throttling.
type PinGate struct {
	pin      string
	input    []byte
	unlocked bool
	failed   bool
}

// NewPinGate creates a gate for the given stored pin. An empty pin means
// the list is unprotected and the gate starts unlocked.
func NewPinGate(pin string) *PinGate {
	return &PinGate{pin: pin, unlocked: pin == ""}
}

// Unlocked reports whether the session has passed the gate.
func (g *PinGate) Unlocked() bool { return g.unlocked }

// LastAttemptFailed reports whether the most recent full-length attempt
// mismatched. It resets as soon as new input arrives.
func (g *PinGate) LastAttemptFailed() bool { return g.failed }

// Pending returns how many digits are currently captured.
func (g *PinGate) Pending() int { return len(g.input) }

// Press captures one digit. Non-digit input is ignored. When the captured
// input reaches the pin's length it is evaluated immediately.
func (g *PinGate) Press(digit byte) {
	if g.unlocked || digit < '0' || digit > '9' {
		return
	}
	g.failed = false
	g.input = append(g.input, digit)
	if len(g.input) == len(g.pin) {
		g.evaluate()
	}
}

// Enter captures a pasted candidate. Digits beyond the pin's length are
// dropped; a partial candidate is captured but not evaluated.
func (g *PinGate) Enter(candidate string) {
	if g.unlocked {
		return
	}
	g.failed = false
	g.input = g.input[:0]
	for i := 0; i < len(candidate) && len(g.input) < len(g.pin); i++ {
		if c := candidate[i]; c >= '0' && c <= '9' {
			g.input = append(g.input, c)
		}
	}
	if len(g.input) == len(g.pin) {
		g.evaluate()
	}
}

func (g *PinGate) evaluate() {
	if string(g.input) == g.pin {
		g.unlocked = true
		g.failed = false
	} else {
		g.failed = true
	}
	g.input = g.input[:0]
}
