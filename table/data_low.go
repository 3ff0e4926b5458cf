// SPDX-License-Identifier: MIT

// Lebedev-Laikov generator rows, one register call per order. Each row is
// {code, a, b, v} in the notation of the published tables; see row.

package table

func init() {
	register(6, []row{
		{octa, 0, 0, 0.1666666666666667},
	})
	register(14, []row{
		{octa, 0, 0, 0.6666666666666667e-1},
		{cube, 0, 0, 0.7500000000000000e-1},
	})
	register(26, []row{
		{octa, 0, 0, 0.4761904761904762e-1},
		{edge, 0, 0, 0.3809523809523810e-1},
		{cube, 0, 0, 0.3214285714285714e-1},
	})
	register(38, []row{
		{octa, 0, 0, 0.9523809523809525e-2},
		{cube, 0, 0, 0.3214285714285714e-1},
		{planar, 0.4597008433809831, 0, 0.2857142857142857e-1},
	})
	register(50, []row{
		{octa, 0, 0, 0.1269841269841270e-1},
		{edge, 0, 0, 0.2257495590828924e-1},
		{cube, 0, 0, 0.2109375000000000e-1},
		{diag, 0.3015113445777636, 0, 0.2017333553791887e-1},
	})
	register(74, []row{
		{octa, 0, 0, 0.5130671797338464e-3},
		{edge, 0, 0, 0.1660406956574204e-1},
		{cube, 0, 0, -0.2958603896103896e-1},
		{diag, 0.4803844614152614, 0, 0.2657620708215946e-1},
		{planar, 0.3207726489807764, 0, 0.1652217099371571e-1},
	})
	register(86, []row{
		{octa, 0, 0, 0.1154401154401154e-1},
		{cube, 0, 0, 0.1194390908585628e-1},
		{diag, 0.3696028464541502, 0, 0.1111055571060340e-1},
		{diag, 0.6943540066026664, 0, 0.1187650129453714e-1},
		{planar, 0.3742430390903412, 0, 0.1181230374690446e-1},
	})
	register(110, []row{
		{octa, 0, 0, 0.3828270494937162e-2},
		{cube, 0, 0, 0.9793737512487513e-2},
		{diag, 0.1851156353447362, 0, 0.8211737283191111e-2},
		{diag, 0.6904210483822922, 0, 0.9942814891178103e-2},
		{diag, 0.3956894730559419, 0, 0.9595471336070962e-2},
		{planar, 0.4783690288121502, 0, 0.9694996361663029e-2},
	})
	register(146, []row{
		{octa, 0, 0, 0.5996313688621381e-3},
		{edge, 0, 0, 0.7372999718620756e-2},
		{cube, 0, 0, 0.7210515360144488e-2},
		{diag, 0.6764410400114264, 0, 0.7116355493117555e-2},
		{diag, 0.4174961227965453, 0, 0.6753829486314477e-2},
		{diag, 0.1574676672039082, 0, 0.7574394159054034e-2},
		{general, 0.1403553811713183, 0.4493328323269557, 0.6991087353303262e-2},
	})
	register(170, []row{
		{octa, 0, 0, 0.5544842902037365e-2},
		{edge, 0, 0, 0.6071332770670752e-2},
		{cube, 0, 0, 0.6383674773515093e-2},
		{diag, 0.2551252621114134, 0, 0.5183387587747790e-2},
		{diag, 0.6743601460362766, 0, 0.6317929009813725e-2},
		{diag, 0.4318910696719410, 0, 0.6201670006589077e-2},
		{planar, 0.2613931360335988, 0, 0.5477143385137348e-2},
		{general, 0.4990453161796037, 0.1446630744325115, 0.5968383987681156e-2},
	})
	register(194, []row{
		{octa, 0, 0, 0.1782340447244611e-2},
		{edge, 0, 0, 0.5716905949977102e-2},
		{cube, 0, 0, 0.5573383178848738e-2},
		{diag, 0.6712973442695226, 0, 0.5608704082587997e-2},
		{diag, 0.2892465627575439, 0, 0.5158237711805383e-2},
		{diag, 0.4446933178717437, 0, 0.5518771467273614e-2},
		{diag, 0.1299335447650067, 0, 0.4106777028169394e-2},
		{planar, 0.3457702197611283, 0, 0.5051846064614808e-2},
		{general, 0.1590417105383530, 0.8360360154824589, 0.5530248916233094e-2},
	})
	register(230, []row{
		{octa, 0, 0, -0.5522639919727325e-1},
		{cube, 0, 0, 0.4450274607445226e-2},
		{diag, 0.4492044687397611, 0, 0.4496841067921404e-2},
		{diag, 0.2520419490210201, 0, 0.5049153450478750e-2},
		{diag, 0.6981906658447242, 0, 0.3976408018051883e-2},
		{diag, 0.6587405243460960, 0, 0.4401400650381014e-2},
		{diag, 0.4038544050097660e-1, 0, 0.1724544350544401e-1},
		{planar, 0.5823842309715584, 0, 0.4231083095357343e-2},
		{planar, 0.3545877390518688, 0, 0.5198069864064399e-2},
		{general, 0.2272181808998187, 0.4864661535886647, 0.4695720972568883e-2},
	})
	register(266, []row{
		{octa, 0, 0, -0.1313769127325498e-2},
		{edge, 0, 0, -0.2522728704860272e-2},
		{cube, 0, 0, 0.4186853881700657e-2},
		{diag, 0.7039373391585478, 0, 0.5315167977811334e-2},
		{diag, 0.1012526248572502, 0, 0.4047142377086014e-2},
		{diag, 0.4647448726420526, 0, 0.4112482394407032e-2},
		{diag, 0.3277420654971586, 0, 0.3595584899758831e-2},
		{diag, 0.6620338663699976, 0, 0.4256131351428199e-2},
		{planar, 0.8506508083520382, 0, 0.4229582700647197e-2},
		{general, 0.3233484542692928, 0.1153112011009665, 0.4080914225780380e-2},
		{general, 0.2314790158712601, 0.5244939240922351, 0.4071467593830970e-2},
	})
	register(302, []row{
		{octa, 0, 0, 0.8545911725128148e-3},
		{cube, 0, 0, 0.3599119285025571e-2},
		{diag, 0.3515640345570105, 0, 0.3449788424305883e-2},
		{diag, 0.6566329410219612, 0, 0.3604822601419882e-2},
		{diag, 0.4729054132581005, 0, 0.3576729661743367e-2},
		{diag, 0.9618308522614784e-1, 0, 0.2352101413689164e-2},
		{diag, 0.2219645236294178, 0, 0.3108953122413675e-2},
		{diag, 0.7011766416089545, 0, 0.3650045807677255e-2},
		{planar, 0.2644152887060663, 0, 0.2982344963171804e-2},
		{planar, 0.5718955891878961, 0, 0.3600820932216460e-2},
		{general, 0.2510034751770465, 0.8000727494073951, 0.3571540554273387e-2},
		{general, 0.1233548532583327, 0.4127724083168531, 0.3392312205006170e-2},
	})
	register(350, []row{
		{octa, 0, 0, 0.3006796749453936e-2},
		{cube, 0, 0, 0.3050627745650771e-2},
		{diag, 0.7068965463912316, 0, 0.1621104600288991e-2},
		{diag, 0.4794682625712025, 0, 0.3005701484901752e-2},
		{diag, 0.1927533154878019, 0, 0.2990992529653774e-2},
		{diag, 0.6930357961327123, 0, 0.2982170644107595e-2},
		{diag, 0.3608302115520091, 0, 0.2721564237310992e-2},
		{diag, 0.6498486161496169, 0, 0.3033513795811141e-2},
		{planar, 0.1932945013230339, 0, 0.3007949555218533e-2},
		{planar, 0.3800494919899303, 0, 0.2881964603055307e-2},
		{general, 0.2899558825499574, 0.7934537856582315, 0.2958357626535696e-2},
		{general, 0.9684121455103957e-1, 0.8280801506686862, 0.3036020026407088e-2},
		{general, 0.1833434647041659, 0.9074658265305127, 0.2832187403926303e-2},
	})
}
