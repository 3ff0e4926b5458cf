// SPDX-License-Identifier: MIT

package octahedral

// term selects one signed parameter of a Representative for one output
// coordinate. z0 emits an exact zero.
type term int8

const (
	z0 term = iota
	pa
	na
	pb
	nb
	pc
	nc
)

// Orbit tables. Row k gives the (x, y, z) terms of the k-th emitted point.
// Rows follow a fixed order so that expansion is reproducible bit for bit.
var (
	orbit6 = [...][3]term{
		{pa, z0, z0}, {na, z0, z0}, {z0, pa, z0}, {z0, na, z0},
		{z0, z0, pa}, {z0, z0, na},
	}
	orbit8 = [...][3]term{
		{pa, pa, pa}, {na, pa, pa}, {pa, na, pa}, {na, na, pa},
		{pa, pa, na}, {na, pa, na}, {pa, na, na}, {na, na, na},
	}
	orbit12 = [...][3]term{
		{z0, pa, pa}, {z0, na, pa}, {z0, pa, na}, {z0, na, na},
		{pa, z0, pa}, {na, z0, pa}, {pa, z0, na}, {na, z0, na},
		{pa, pa, z0}, {na, pa, z0}, {pa, na, z0}, {na, na, z0},
	}
	orbit24 = [...][3]term{
		{pa, pa, pb}, {na, pa, pb}, {pa, na, pb}, {na, na, pb},
		{pa, pa, nb}, {na, pa, nb}, {pa, na, nb}, {na, na, nb},
		{pa, pb, pa}, {na, pb, pa}, {pa, nb, pa}, {na, nb, pa},
		{pa, pb, na}, {na, pb, na}, {pa, nb, na}, {na, nb, na},
		{pb, pa, pa}, {nb, pa, pa}, {pb, na, pa}, {nb, na, pa},
		{pb, pa, na}, {nb, pa, na}, {pb, na, na}, {nb, na, na},
	}
	orbit24Axis = [...][3]term{
		{pa, pb, z0}, {na, pb, z0}, {pa, nb, z0}, {na, nb, z0},
		{pb, pa, z0}, {nb, pa, z0}, {pb, na, z0}, {nb, na, z0},
		{pa, z0, pb}, {na, z0, pb}, {pa, z0, nb}, {na, z0, nb},
		{pb, z0, pa}, {nb, z0, pa}, {pb, z0, na}, {nb, z0, na},
		{z0, pa, pb}, {z0, na, pb}, {z0, pa, nb}, {z0, na, nb},
		{z0, pb, pa}, {z0, nb, pa}, {z0, pb, na}, {z0, nb, na},
	}
	orbit48 = [...][3]term{
		{pa, pb, pc}, {na, pb, pc}, {pa, nb, pc}, {na, nb, pc},
		{pa, pb, nc}, {na, pb, nc}, {pa, nb, nc}, {na, nb, nc},
		{pa, pc, pb}, {na, pc, pb}, {pa, nc, pb}, {na, nc, pb},
		{pa, pc, nb}, {na, pc, nb}, {pa, nc, nb}, {na, nc, nb},
		{pb, pa, pc}, {nb, pa, pc}, {pb, na, pc}, {nb, na, pc},
		{pb, pa, nc}, {nb, pa, nc}, {pb, na, nc}, {nb, na, nc},
		{pb, pc, pa}, {nb, pc, pa}, {pb, nc, pa}, {nb, nc, pa},
		{pb, pc, na}, {nb, pc, na}, {pb, nc, na}, {nb, nc, na},
		{pc, pa, pb}, {nc, pa, pb}, {pc, na, pb}, {nc, na, pb},
		{pc, pa, nb}, {nc, pa, nb}, {pc, na, nb}, {nc, na, nb},
		{pc, pb, pa}, {nc, pb, pa}, {pc, nb, pa}, {nc, nb, pa},
		{pc, pb, na}, {nc, pb, na}, {pc, nb, na}, {nc, nb, na},
	}
)
