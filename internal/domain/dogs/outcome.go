package dogs

type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota + 1
	OutcomeInvalid
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome es el resultado de Handle. La capa HTTP lo traduce a
// redirect + flash (HTML) o a status + body (JSON).
type Outcome struct {
	Kind OutcomeKind

	// Dog solo es válido si Kind == OutcomeCreated.
	Dog Dog

	Redirect string
	Flash    map[string]string
	Errors   FieldErrors
}

func (o Outcome) Succeeded() bool { return o.Kind == OutcomeCreated }

func createdOutcome(d Dog) Outcome {
	return Outcome{
		Kind:     OutcomeCreated,
		Dog:      d,
		Redirect: CreateFormPath,
		Flash:    map[string]string{"success": MsgDogCreated},
	}
}

func invalidOutcome(errs FieldErrors) Outcome {
	return Outcome{
		Kind:     OutcomeInvalid,
		Redirect: CreateFormPath,
		Errors:   errs,
	}
}

func failedOutcome() Outcome {
	return Outcome{
		Kind:     OutcomeFailed,
		Redirect: CreateFormPath,
		Errors:   FieldErrors{FieldGeneral: MsgCreationFailed},
	}
}
