package domain

// ProviderStatus is the normalized payment status observed at the provider.
type ProviderStatus string

const (
	ProviderStatusApproved  ProviderStatus = "approved"
	ProviderStatusPending   ProviderStatus = "pending"
	ProviderStatusRejected  ProviderStatus = "rejected"
	ProviderStatusCancelled ProviderStatus = "cancelled"
	ProviderStatusExpired   ProviderStatus = "expired"
)

// NormalizeProviderStatus maps a raw MercadoPago payment status onto the
// statuses the transition table understands. Unknown values are treated as
// pending, which never moves a cobro.
func NormalizeProviderStatus(raw string) ProviderStatus {
	switch raw {
	case "approved":
		return ProviderStatusApproved
	case "rejected":
		return ProviderStatusRejected
	case "cancelled", "refunded", "charged_back":
		return ProviderStatusCancelled
	case "expired":
		return ProviderStatusExpired
	default:
		// pending, in_process, authorized, in_mediation and anything new
		return ProviderStatusPending
	}
}

// NextState evaluates the transition table for a provider observation.
// It returns the target state and true when the observation moves the cobro,
// or the current state and false when it is a no-op.
//
//	current \ observed | approved | pending | rejected/cancelled | expired
//	Pendiente          | Pagado   | -       | Anulado            | Vencido
//	Vencido            | Pagado   | -       | Anulado            | -
//	Pagado, Anulado    | -        | -       | -                  | -
func NextState(current CobroState, observed ProviderStatus) (CobroState, bool) {
	if current.IsTerminal() {
		return current, false
	}

	switch observed {
	case ProviderStatusApproved:
		return CobroStatePagado, true
	case ProviderStatusRejected, ProviderStatusCancelled:
		return CobroStateAnulado, true
	case ProviderStatusExpired:
		if current == CobroStatePendiente {
			return CobroStateVencido, true
		}
	}
	return current, false
}
