package domain

const (
	// FoundMessage is the only list-all message that makes the records visible.
	FoundMessage = "Lawyers found"
	// UnavailableMessage replaces any other list-all answer.
	UnavailableMessage = "Lawyers aren't available"
)

// ViewMode selects which of the two directory views a DirectoryState backs.
type ViewMode string

const (
	ModeAll          ViewMode = "all"
	ModeByCaseDomain ViewMode = "by_case_domain"
)

// Outcome classifies the last result applied to a DirectoryState.
type Outcome string

const (
	OutcomeNone             Outcome = "none"
	OutcomeFound            Outcome = "found"
	OutcomeEmpty            Outcome = "empty"
	OutcomeServiceError     Outcome = "service_error"
	OutcomeTransportFailure Outcome = "transport_failure"
)

// ClassifyError maps a fetch error onto the outcome taxonomy. Anything that is not a
// ServiceError counts as a transport failure.
func ClassifyError(err error) Outcome {
	if err == nil {
		return OutcomeNone
	}
	if _, ok := AsServiceError(err); ok {
		return OutcomeServiceError
	}
	return OutcomeTransportFailure
}

// DirectoryState is what a directory view shows. Records and Message are replaced
// wholesale by the reducers below and never merged.
type DirectoryState struct {
	Records []Provider
	Message string
	Filter  string
	Outcome Outcome
}

func NewDirectoryState() DirectoryState {
	return DirectoryState{Records: []Provider{}, Outcome: OutcomeNone}
}

// WithFilter records the selected case domain. It never triggers a query.
func (s DirectoryState) WithFilter(caseDomain string) DirectoryState {
	s.Filter = caseDomain
	return s
}

// RecordsVisible reports whether a view in the given mode renders its record table.
// The unfiltered view gates on the found sentinel; the filtered view on record count.
func (s DirectoryState) RecordsVisible(mode ViewMode) bool {
	if mode == ModeAll {
		return s.Message == FoundMessage
	}
	return len(s.Records) > 0
}

// ReduceListAll applies the answer of an unfiltered fetch.
//
// Only the found sentinel exposes records. Every other answer, service errors
// included, collapses to the generic unavailable message. A transport failure empties
// the records and leaves the message as it was.
func ReduceListAll(s DirectoryState, page ProviderPage, err error) DirectoryState {
	switch {
	case err == nil && page.Message == FoundMessage:
		s.Records = cloneProviders(page.Providers)
		s.Message = page.Message
		s.Outcome = OutcomeFound
	case err == nil:
		s.Records = []Provider{}
		s.Message = UnavailableMessage
		s.Outcome = OutcomeEmpty
	case ClassifyError(err) == OutcomeServiceError:
		s.Records = []Provider{}
		s.Message = UnavailableMessage
		s.Outcome = OutcomeServiceError
	default:
		s.Records = []Provider{}
		s.Outcome = OutcomeTransportFailure
	}
	return s
}

// ReduceFiltered applies the answer of a case-domain query.
//
// Success shows the service's message verbatim. A service error empties the records
// and shows the service's error text. A transport failure leaves the state untouched.
func ReduceFiltered(s DirectoryState, page ProviderPage, err error) DirectoryState {
	if err == nil {
		s.Records = cloneProviders(page.Providers)
		s.Message = page.Message
		s.Outcome = OutcomeEmpty
		if len(s.Records) > 0 {
			s.Outcome = OutcomeFound
		}
		return s
	}
	if se, ok := AsServiceError(err); ok {
		s.Records = []Provider{}
		s.Message = se.Message
		s.Outcome = OutcomeServiceError
		return s
	}
	return s
}
