package production

// Status is the lifecycle state of a service order
type Status string

const (
	StatusPending      Status = "pending"
	StatusInProduction Status = "in_production"
	StatusFinished     Status = "finished"
	StatusDelivered    Status = "delivered"
	StatusCancelled    Status = "cancelled"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProduction, StatusFinished, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Label is the human name printed on sheets and reports
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusInProduction:
		return "Em produção"
	case StatusFinished:
		return "Finalizada"
	case StatusDelivered:
		return "Entregue"
	case StatusCancelled:
		return "Cancelada"
	}
	return string(s)
}

// CanTransitionTo checks if the status can move to target
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusInProduction || target == StatusCancelled
	case StatusInProduction:
		return target == StatusFinished || target == StatusCancelled
	case StatusFinished:
		return target == StatusDelivered
	case StatusDelivered, StatusCancelled:
		return false
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsDone reports whether the order has been produced
func (s Status) IsDone() bool {
	return s == StatusFinished || s == StatusDelivered
}
