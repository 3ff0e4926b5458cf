// SPDX-License-Identifier: MIT

// Lebedev-Laikov generator rows, one register call per order. Each row is
// {code, a, b, v} in the notation of the published tables; see row.

package table

func init() {
	register(434, []row{
		{octa, 0, 0, 0.5265897968224436e-3},
		{edge, 0, 0, 0.2548219972002607e-2},
		{cube, 0, 0, 0.2512317418927307e-2},
		{diag, 0.6909346307509111, 0, 0.2530403801186355e-2},
		{diag, 0.1774836054609158, 0, 0.2014279020918528e-2},
		{diag, 0.4914342637784746, 0, 0.2501725168402936e-2},
		{diag, 0.6456664707424256, 0, 0.2513267174597564e-2},
		{diag, 0.2861289010307638, 0, 0.2302694782227416e-2},
		{diag, 0.7568084367178018e-1, 0, 0.1462495621594614e-2},
		{diag, 0.3927259763368002, 0, 0.2445373437312980e-2},
		{planar, 0.8818132877794288, 0, 0.2417442375638981e-2},
		{planar, 0.9776428111182649, 0, 0.1910951282179532e-2},
		{general, 0.2054823696403044, 0.8689460322872412, 0.2416930044324775e-2},
		{general, 0.5905157048925271, 0.7999278543857286, 0.2512236854563495e-2},
		{general, 0.5550152361076807, 0.7717462626915901, 0.2496644054553086e-2},
		{general, 0.9371809858553722, 0.3344363145343455, 0.2236607760437849e-2},
	})
	register(590, []row{
		{octa, 0, 0, 0.3095121295306187e-3},
		{cube, 0, 0, 0.1852379698597489e-2},
		{diag, 0.7040954938227469, 0, 0.1871790639277744e-2},
		{diag, 0.6807744066455244, 0, 0.1858812585438317e-2},
		{diag, 0.6372546939258752, 0, 0.1852028828296213e-2},
		{diag, 0.5044419707800358, 0, 0.1846715956151242e-2},
		{diag, 0.4215761784010967, 0, 0.1818471778162769e-2},
		{diag, 0.3317920736472123, 0, 0.1749564657281154e-2},
		{diag, 0.2384736701421887, 0, 0.1617210647254411e-2},
		{diag, 0.1459036449157763, 0, 0.1384737234851692e-2},
		{diag, 0.6095034115507196e-1, 0, 0.9764331165051050e-3},
		{planar, 0.6116843442009876, 0, 0.1857161196774078e-2},
		{planar, 0.3964755348199858, 0, 0.1705153996395864e-2},
		{planar, 0.1724782009907724, 0, 0.1300321685886048e-2},
		{general, 0.5610263808622060, 0.3518280927733519, 0.1842866472905286e-2},
		{general, 0.4742392842551980, 0.2634716655937950, 0.1802658934377451e-2},
		{general, 0.5984126497885380, 0.1816640840360209, 0.1849830560443660e-2},
		{general, 0.3791035407695563, 0.1720795225656878, 0.1713904507106709e-2},
		{general, 0.2778673190586244, 0.8213021581932511e-1, 0.1555213603396808e-2},
		{general, 0.5033564271075117, 0.8999205842074876e-1, 0.1802239128008525e-2},
	})
	register(770, []row{
		{octa, 0, 0, 0.2192942088181184e-3},
		{edge, 0, 0, 0.1436433617319080e-2},
		{cube, 0, 0, 0.1421940344335877e-2},
		{diag, 0.5087204410502360e-1, 0, 0.6798123511050502e-3},
		{diag, 0.1228198790178831, 0, 0.9913184235294911e-3},
		{diag, 0.2026890814408786, 0, 0.1180207833238949e-2},
		{diag, 0.2847745156464294, 0, 0.1296599602080921e-2},
		{diag, 0.3656719078978026, 0, 0.1365871427428316e-2},
		{diag, 0.4428264886713469, 0, 0.1402988604775325e-2},
		{diag, 0.5140619627249735, 0, 0.1418645563595609e-2},
		{diag, 0.6306401219166803, 0, 0.1421376741851662e-2},
		{diag, 0.6716883332022612, 0, 0.1423996475490962e-2},
		{diag, 0.6979792685336881, 0, 0.1431554042178567e-2},
		{planar, 0.1446865674195309, 0, 0.9254401499865368e-3},
		{planar, 0.3390263475411216, 0, 0.1250239995053509e-2},
		{planar, 0.5335804651263506, 0, 0.1394365843329230e-2},
		{general, 0.6944024393349413e-1, 0.2355187894242326, 0.1127089094671749e-2},
		{general, 0.2269004109529460, 0.4102182474045730, 0.1345753760910670e-2},
		{general, 0.8025574607775339e-1, 0.6214302417481605, 0.1424957283316783e-2},
		{general, 0.1467999527896572, 0.3245284345717394, 0.1261523341237750e-2},
		{general, 0.1571507769824727, 0.5224482189696630, 0.1392547106052696e-2},
		{general, 0.2365702993157246, 0.6017546634089558, 0.1418761677877656e-2},
		{general, 0.7714815866765733e-1, 0.4346575516141163, 0.1338366684479554e-2},
		{general, 0.3062936666210730, 0.4908826589037616, 0.1393700862676131e-2},
		{general, 0.3822477379524787, 0.5648768149099500, 0.1415914757466932e-2},
	})
	register(974, []row{
		{octa, 0, 0, 0.1438294190527431e-3},
		{cube, 0, 0, 0.1125772288287004e-2},
		{diag, 0.4292963545341347e-1, 0, 0.4948029341949241e-3},
		{diag, 0.1051426854086404, 0, 0.7357990109125470e-3},
		{diag, 0.1750024867623087, 0, 0.8889132771304384e-3},
		{diag, 0.2477653379650257, 0, 0.9888347838921435e-3},
		{diag, 0.3206567123955957, 0, 0.1053299681709471e-2},
		{diag, 0.3916520749849983, 0, 0.1092778807014578e-2},
		{diag, 0.4590825874187624, 0, 0.1114389394063227e-2},
		{diag, 0.5214563888415861, 0, 0.1123724788051555e-2},
		{diag, 0.6253170244654199, 0, 0.1125239325243814e-2},
		{diag, 0.6637926744523170, 0, 0.1126153271815905e-2},
		{diag, 0.6910410398498301, 0, 0.1130286931123841e-2},
		{diag, 0.7052907007457760, 0, 0.1134986534363955e-2},
		{planar, 0.1236686762657990, 0, 0.6823367927109931e-3},
		{planar, 0.2940777114468387, 0, 0.9454158160447096e-3},
		{planar, 0.4697753849207649, 0, 0.1074429975385679e-2},
		{planar, 0.6334563241139567, 0, 0.1129300086569132e-2},
		{general, 0.5974048614181342e-1, 0.2029128752777523, 0.8436884500901954e-3},
		{general, 0.1375760408473636, 0.4602621942484054, 0.1075255720448885e-2},
		{general, 0.3391016526336286, 0.5030673999662036, 0.1108577236864462e-2},
		{general, 0.1271675191439820, 0.2817606422442134, 0.9566475323783357e-3},
		{general, 0.2693120740413512, 0.4331561291720157, 0.1080663250717391e-2},
		{general, 0.1419786452601918, 0.6256167358580814, 0.1126797131196295e-2},
		{general, 0.6709284600738255e-1, 0.3798395216859157, 0.1022568715358061e-2},
		{general, 0.7057738183256172e-1, 0.5517505421423520, 0.1108960267713108e-2},
		{general, 0.2783888477882155, 0.6029619156159187, 0.1122790653435766e-2},
		{general, 0.1979578938917407, 0.3589606329589096, 0.1032401847117460e-2},
		{general, 0.2087307061103274, 0.5348666438135476, 0.1107249382283854e-2},
		{general, 0.4055122137872836, 0.5674997546074373, 0.1121780048519972e-2},
	})
	register(1202, []row{
		{octa, 0, 0, 0.1105189233267572e-3},
		{edge, 0, 0, 0.9205232738090741e-3},
		{cube, 0, 0, 0.9133159786443561e-3},
		{diag, 0.3712636449657089e-1, 0, 0.3690421898017899e-3},
		{diag, 0.9140060412262223e-1, 0, 0.5603990928680660e-3},
		{diag, 0.1531077852469906, 0, 0.6865297629282609e-3},
		{diag, 0.2180928891660612, 0, 0.7720338551145630e-3},
		{diag, 0.2839874532200175, 0, 0.8301545958894795e-3},
		{diag, 0.3491177600963764, 0, 0.8686692550179628e-3},
		{diag, 0.4121431461444309, 0, 0.8927076285846890e-3},
		{diag, 0.4718993627149127, 0, 0.9060820238568219e-3},
		{diag, 0.5273145452842337, 0, 0.9119777254940867e-3},
		{diag, 0.6209475332444019, 0, 0.9128720138604181e-3},
		{diag, 0.6569722711857291, 0, 0.9130714935691735e-3},
		{diag, 0.6841788309070143, 0, 0.9152873784554116e-3},
		{diag, 0.7012604330123631, 0, 0.9187436274321654e-3},
		{planar, 0.1072382215478166, 0, 0.5176977312965694e-3},
		{planar, 0.2582068959496968, 0, 0.7331143682101417e-3},
		{planar, 0.4172752955306717, 0, 0.8463232836379928e-3},
		{planar, 0.5700366911792503, 0, 0.9031122694253992e-3},
		{general, 0.9827986018263947, 0.1771774022615325, 0.6485778453163257e-3},
		{general, 0.9624249230326228, 0.2475716463426288, 0.7435030910982369e-3},
		{general, 0.9402007994128811, 0.3354616289066489, 0.7998527891839054e-3},
		{general, 0.9320822040143202, 0.3173615246611977, 0.8101731497468018e-3},
		{general, 0.9043674199393299, 0.4090268427085357, 0.8483389574594330e-3},
		{general, 0.8912407560074747, 0.3854291150669224, 0.8556299257311812e-3},
		{general, 0.8676435628462708, 0.4932221184851285, 0.8803208679738260e-3},
		{general, 0.8581979986041619, 0.4785320675922435, 0.8811048182425720e-3},
		{general, 0.8396753624049856, 0.4507422593157064, 0.8850282341265444e-3},
		{general, 0.8165288564022188, 0.5632123020762100, 0.9021342299040653e-3},
		{general, 0.8015469370783529, 0.5434303569693900, 0.9010091677105086e-3},
		{general, 0.7773563069070351, 0.5123518486419871, 0.9022692938426915e-3},
		{general, 0.7661621213900394, 0.6394279634749102, 0.9158016174693465e-3},
		{general, 0.7553584143533510, 0.6269805509024392, 0.9131578003189435e-3},
		{general, 0.7344305757559503, 0.6031161693096310, 0.9107813579482705e-3},
		{general, 0.7043837184021765, 0.5693702498468441, 0.9105760258970126e-3},
	})
	register(1454, []row{
		{octa, 0, 0, 0.7777160743261247e-4},
		{cube, 0, 0, 0.7557646413004701e-3},
		{diag, 0.3229290663413854e-1, 0, 0.2841633806090617e-3},
		{diag, 0.8036733271462222e-1, 0, 0.4374419127053555e-3},
		{diag, 0.1354289960531653, 0, 0.5417174740872172e-3},
		{diag, 0.1938963861114426, 0, 0.6148000891358593e-3},
		{diag, 0.2537343715011275, 0, 0.6664394485800704e-3},
		{diag, 0.3135251434752570, 0, 0.7025039356923220e-3},
		{diag, 0.3721558339375338, 0, 0.7268511789249627e-3},
		{diag, 0.4286809575195696, 0, 0.7422637534208629e-3},
		{diag, 0.4822510128282994, 0, 0.7509545035841214e-3},
		{diag, 0.5320679333566263, 0, 0.7548535057718401e-3},
		{diag, 0.6172998195394274, 0, 0.7554088969774001e-3},
		{diag, 0.6510679849127481, 0, 0.7553147174442808e-3},
		{diag, 0.6777315251687360, 0, 0.7564767653292297e-3},
		{diag, 0.6963109410648741, 0, 0.7587991808518730e-3},
		{diag, 0.7058935009831749, 0, 0.7608261832033027e-3},
		{planar, 0.9955546194091857, 0, 0.4021680447874916e-3},
		{planar, 0.9734115901794209, 0, 0.5804871793945964e-3},
		{planar, 0.9275693732388626, 0, 0.6792151955945159e-3},
		{planar, 0.8568022422795103, 0, 0.7336741211286294e-3},
		{planar, 0.7623495553719372, 0, 0.7581866300989608e-3},
		{general, 0.5707522908892223, 0.4387028039889501, 0.7538257859800743e-3},
		{general, 0.5196463388403083, 0.3858908414762617, 0.7483517247053123e-3},
		{general, 0.4646337531215351, 0.3301937372343854, 0.7371763661112059e-3},
		{general, 0.4063901697557691, 0.2725423573563777, 0.7183448895756934e-3},
		{general, 0.3456329466643087, 0.2139510237495250, 0.6895815529822191e-3},
		{general, 0.2831395121050332, 0.1555922309786647, 0.6480105801792886e-3},
		{general, 0.2197682022925330, 0.9892878979686097e-1, 0.5897558896594636e-3},
		{general, 0.1564696098650355, 0.4598642910675510e-1, 0.5095708849247346e-3},
		{general, 0.6027356673721295, 0.3376625140173426, 0.7536906428909755e-3},
		{general, 0.5496032320255096, 0.2822301309727988, 0.7472505965575118e-3},
		{general, 0.4921707755234567, 0.2248632342592540, 0.7343017132279698e-3},
		{general, 0.4309422998598483, 0.1666224723456479, 0.7130871582177445e-3},
		{general, 0.3664108182313672, 0.1086964901822169, 0.6817022032112776e-3},
		{general, 0.2990189057758436, 0.5251989784120085e-1, 0.6380941145604121e-3},
		{general, 0.6268724013144998, 0.2297523657550023, 0.7550381377920310e-3},
		{general, 0.5707324144834607, 0.1723080607093800, 0.7478646640144802e-3},
		{general, 0.5096360901960365, 0.1140238465390513, 0.7335918720601220e-3},
		{general, 0.4438729938312456, 0.5611522095882537e-1, 0.7110120527658118e-3},
		{general, 0.6419978471082389, 0.1164174423140873, 0.7571363978689501e-3},
		{general, 0.5817218061802611, 0.5797589531445219e-1, 0.7489908329079233e-3},
	})
}
