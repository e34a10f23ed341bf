package field

// Lerp evaluates the line through (x1,y1) and (x2,y2) at xm, exactly y1 and
// y2 at the ends.
func Lerp(x1, x2, y1, y2, xm float64) float64 {
	s := (xm - x1) / (x2 - x1)
	return (1-s)*y1 + s*y2
}

// InterpolateTime fills result with the linear interpolation in time of f1
// (at x1) and f2 (at x2), evaluated at xm. When x1 == x2 result is a copy of
// f1, including its time stamp.
func InterpolateTime(x1, x2 float64, f1, f2 *Field, xm float64, result *Field) (err error) {
	if err = f1.CheckShape(f2); err != nil {
		return
	}
	if err = result.CheckShape(f1); err != nil {
		return
	}
	if x1 == x2 {
		return result.CopyFrom(f1)
	}
	var (
		scale      = (xm - x1) / (x2 - x1)
		v1, v2, vr = f1.Data, f2.Data, result.Data
	)
	// Weighted form, exact at both ends
	for i := range vr {
		vr[i] = (1-scale)*v1[i] + scale*v2[i]
	}
	result.Time = xm
	return
}
