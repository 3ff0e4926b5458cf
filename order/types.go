// SPDX-License-Identifier: MIT

package order

// Order identifies a Lebedev rule by its number of points.
// The zero value is not a valid order.
type Order int

// Catalog orders, one per slot, ascending.
const (
	Order6    Order = 6
	Order14   Order = 14
	Order26   Order = 26
	Order38   Order = 38
	Order50   Order = 50
	Order74   Order = 74
	Order86   Order = 86
	Order110  Order = 110
	Order146  Order = 146
	Order170  Order = 170
	Order194  Order = 194
	Order230  Order = 230
	Order266  Order = 266
	Order302  Order = 302
	Order350  Order = 350
	Order386  Order = 386
	Order434  Order = 434
	Order482  Order = 482
	Order530  Order = 530
	Order590  Order = 590
	Order650  Order = 650
	Order698  Order = 698
	Order770  Order = 770
	Order830  Order = 830
	Order890  Order = 890
	Order974  Order = 974
	Order1046 Order = 1046
	Order1118 Order = 1118
	Order1202 Order = 1202
	Order1274 Order = 1274
	Order1358 Order = 1358
	Order1454 Order = 1454
	Order1538 Order = 1538
	Order1622 Order = 1622
	Order1730 Order = 1730
	Order1814 Order = 1814
	Order1910 Order = 1910
	Order2030 Order = 2030
	Order2126 Order = 2126
	Order2222 Order = 2222
	Order2354 Order = 2354
	Order2450 Order = 2450
	Order2558 Order = 2558
	Order2702 Order = 2702
	Order2810 Order = 2810
	Order2930 Order = 2930
	Order3074 Order = 3074
	Order3182 Order = 3182
	Order3314 Order = 3314
	Order3470 Order = 3470
	Order3590 Order = 3590
	Order3722 Order = 3722
	Order3890 Order = 3890
	Order4010 Order = 4010
	Order4154 Order = 4154
	Order4334 Order = 4334
	Order4466 Order = 4466
	Order4610 Order = 4610
	Order4802 Order = 4802
	Order4934 Order = 4934
	Order5090 Order = 5090
	Order5294 Order = 5294
	Order5438 Order = 5438
	Order5606 Order = 5606
	Order5810 Order = 5810
)

// N is the number of catalog slots.
const N = 65

// pointCounts[i] is the number of points of slot i.
var pointCounts = [N]int{
	6, 14, 26, 38, 50, 74, 86, 110, 146, 170,
	194, 230, 266, 302, 350, 386, 434, 482, 530, 590,
	650, 698, 770, 830, 890, 974, 1046, 1118, 1202, 1274,
	1358, 1454, 1538, 1622, 1730, 1814, 1910, 2030, 2126, 2222,
	2354, 2450, 2558, 2702, 2810, 2930, 3074, 3182, 3314, 3470,
	3590, 3722, 3890, 4010, 4154, 4334, 4466, 4610, 4802, 4934,
	5090, 5294, 5438, 5606, 5810,
}

// degrees[i] is the exactness degree of slot i.
var degrees = [N]int{
	3, 5, 7, 9, 11, 13, 15, 17, 19, 21,
	23, 25, 27, 29, 31, 33, 35, 37, 39, 41,
	43, 45, 47, 49, 51, 53, 55, 57, 59, 61,
	63, 65, 67, 69, 71, 73, 75, 77, 79, 81,
	83, 85, 87, 89, 91, 93, 95, 97, 99, 101,
	103, 105, 107, 109, 111, 113, 115, 117, 119, 121,
	123, 125, 127, 129, 131,
}

// available[i] reports whether a published rule exists for slot i.
// Slots 15, 17, 18 and every slot from 20 on that is not 19+3k have none.
var available = [N]bool{
	true, true, true, true, true, true, true, true, true, true, // 6 … 170
	true, true, true, true, true, false, true, false, false, true, // 194 … 590
	false, false, true, false, false, true, false, false, true, false, // 650 … 1274
	false, true, false, false, true, false, false, true, false, false, // 1358 … 2222
	true, false, false, true, false, false, true, false, false, true, // 2354 … 3470
	false, false, true, false, false, true, false, false, true, false, // 3590 … 4934
	false, true, false, false, true, // 5090 … 5810
}
