package kdbush

import "math"

// sortRange recursively partitions ids/coords into a median-split k-d
// layout, alternating the split axis at each recursion depth. Recursion
// stops once a range holds nodeSize+1 or fewer points, leaving them in an
// unspecified order (a "leaf block").
func sortRange(ids []uint32, coords []float64, nodeSize, left, right, axis int) {
	if right-left <= nodeSize {
		return
	}
	m := (left + right) >> 1
	selectRange(ids, coords, m, left, right, axis)
	sortRange(ids, coords, nodeSize, left, m-1, 1-axis)
	sortRange(ids, coords, nodeSize, m+1, right, 1-axis)
}

// selectRange partitions coords[left..right] (reordering ids in lockstep)
// so that the element at index k is the one that would occupy position k in
// sorted order on the given axis, with all smaller elements to its left and
// all larger elements to its right. It is a Floyd–Rivest style quickselect:
// a small recursive "sample" step narrows the working range before the
// Hoare partition runs, which keeps the constant factor low and the access
// pattern cache-friendly for the large N this index is built for.
func selectRange(ids []uint32, coords []float64, k, left, right, axis int) {
	for right > left {
		if right-left > 600 {
			n := float64(right - left + 1)
			m := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if m-n/2 < 0 {
				sd = -sd
			}
			newLeft := int(math.Max(float64(left), math.Floor(float64(k)-m*s/n+sd)))
			newRight := int(math.Min(float64(right), math.Floor(float64(k)+(n-m)*s/n+sd)))
			selectRange(ids, coords, k, newLeft, newRight, axis)
		}

		t := coords[2*k+axis]
		i := left
		j := right

		swapItem(ids, coords, left, k)
		if coords[2*right+axis] > t {
			swapItem(ids, coords, left, right)
		}

		for i < j {
			swapItem(ids, coords, i, j)
			i++
			j--
			for coords[2*i+axis] < t {
				i++
			}
			for coords[2*j+axis] > t {
				j--
			}
		}

		if coords[2*left+axis] == t {
			swapItem(ids, coords, left, j)
		} else {
			j++
			swapItem(ids, coords, j, right)
		}

		if j <= k {
			left = j + 1
		}
		if k <= j {
			right = j - 1
		}
	}
}

func swapItem(ids []uint32, coords []float64, i, j int) {
	ids[i], ids[j] = ids[j], ids[i]
	coords[2*i], coords[2*j] = coords[2*j], coords[2*i]
	coords[2*i+1], coords[2*j+1] = coords[2*j+1], coords[2*i+1]
}
