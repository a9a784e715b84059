package datastate

// Combine4 merges four projection states into one. The combined value is
// produced only when every input carries data; otherwise the most severe
// status wins (Error > NoNetwork > Loading > Pending > Loaded) and the
// combined data, when computable, rides along so consumers can keep showing
// it.
func Combine4[A, B, C, D, R any](
	a DataState[A],
	b DataState[B],
	c DataState[C],
	d DataState[D],
	combine func(A, B, C, D) R,
) DataState[R] {
	status := worst(worst(a.status, b.status), worst(c.status, d.status))

	var data *R
	av, aok := a.Data()
	bv, bok := b.Data()
	cv, cok := c.Data()
	dv, dok := d.Data()
	if aok && bok && cok && dok {
		combined := combine(av, bv, cv, dv)
		data = &combined
	}

	switch status {
	case StatusError:
		return DataState[R]{status: StatusError, data: data, err: firstErr(a.err, b.err, c.err, d.err)}
	case StatusNoNetwork:
		return DataState[R]{status: StatusNoNetwork, data: data}
	case StatusLoading:
		return Loading[R]()
	case StatusPending:
		if data == nil {
			return Loading[R]()
		}
		return DataState[R]{status: StatusPending, data: data}
	default:
		if data == nil {
			return Loading[R]()
		}
		return DataState[R]{status: StatusLoaded, data: data}
	}
}

// severity orders statuses for combination; the highest value dominates.
func severity(s Status) int {
	switch s {
	case StatusLoaded:
		return 0
	case StatusPending:
		return 1
	case StatusLoading:
		return 2
	case StatusNoNetwork:
		return 3
	default: // StatusError
		return 4
	}
}

func worst(a, b Status) Status {
	if severity(a) >= severity(b) {
		return a
	}
	return b
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
