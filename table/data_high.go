// SPDX-License-Identifier: MIT

// Lebedev-Laikov generator rows, one register call per order. Each row is
// {code, a, b, v} in the notation of the published tables; see row.

package table

func init() {
	register(1730, []row{
		{octa, 0, 0, 0.6309049437420976e-4},
		{edge, 0, 0, 0.6398287705571748e-3},
		{cube, 0, 0, 0.6357185073530719e-3},
		{diag, 0.2860923126194662e-1, 0, 0.2221207162188168e-3},
		{diag, 0.7142556767711522e-1, 0, 0.3475784022286848e-3},
		{diag, 0.1209199540995559, 0, 0.4350742443589804e-3},
		{diag, 0.1738673106594379, 0, 0.4978569136522127e-3},
		{diag, 0.2284645438467734, 0, 0.5435036221998053e-3},
		{diag, 0.2834807671701512, 0, 0.5765913388219542e-3},
		{diag, 0.3379680145467339, 0, 0.6001200359226003e-3},
		{diag, 0.3911355454819537, 0, 0.6162178172717512e-3},
		{diag, 0.4422860353001403, 0, 0.6265218152438484e-3},
		{diag, 0.4907781568726057, 0, 0.6323987160974212e-3},
		{diag, 0.5360006153211468, 0, 0.6350767851540569e-3},
		{diag, 0.6142105973596603, 0, 0.6354362775297107e-3},
		{diag, 0.6459300387977503, 0, 0.6352302462706236e-3},
		{diag, 0.6718056125089225, 0, 0.6358117881417972e-3},
		{diag, 0.6910888533186254, 0, 0.6373101590310116e-3},
		{diag, 0.7030467416823252, 0, 0.6390428961368665e-3},
		{planar, 0.8354951166354646e-1, 0, 0.3186913449946576e-3},
		{planar, 0.2050143009099486, 0, 0.4678028558591711e-3},
		{planar, 0.3370208290706637, 0, 0.5538829697598626e-3},
		{planar, 0.4689051484233963, 0, 0.6044475907190476e-3},
		{planar, 0.5939400424557334, 0, 0.6313575103509012e-3},
		{general, 0.1394983311832261, 0.4097581162050343e-1, 0.4078626431855630e-3},
		{general, 0.1967999180485014, 0.8851987391293348e-1, 0.4759933057812725e-3},
		{general, 0.2546183732548967, 0.1397680182969819, 0.5268151186413440e-3},
		{general, 0.3121281074713875, 0.1929452542226526, 0.5643048560507316e-3},
		{general, 0.3685981078502492, 0.2467898337061562, 0.5914501076613073e-3},
		{general, 0.4233760321547856, 0.3003104124785409, 0.6104561257874195e-3},
		{general, 0.4758671236059246, 0.3526684328175033, 0.6230252860707806e-3},
		{general, 0.5255178579796463, 0.4031134861145713, 0.6305618761760796e-3},
		{general, 0.5718025633734589, 0.4509426448342351, 0.6343092767597889e-3},
		{general, 0.2686927772723415, 0.4711322502423248e-1, 0.5176268945737827e-3},
		{general, 0.3306006819904809, 0.9784487303942695e-1, 0.5564840313313692e-3},
		{general, 0.3904906850594983, 0.1505395810025273, 0.5856426671038980e-3},
		{general, 0.4479957951904390, 0.2039728156296050, 0.6066386925777091e-3},
		{general, 0.5027076848919780, 0.2571529941121107, 0.6208824962234458e-3},
		{general, 0.5542087392260217, 0.3092191375815670, 0.6296314297822907e-3},
		{general, 0.6020850887375186, 0.3593807506130276, 0.6340423756791859e-3},
		{general, 0.4019851409179594, 0.5063389934378671e-1, 0.5829627677107342e-3},
		{general, 0.4635614567449800, 0.1032422269160612, 0.6048693376081110e-3},
		{general, 0.5215860931591575, 0.1566322094006254, 0.6202362317732461e-3},
		{general, 0.5758202499099271, 0.2098082827491099, 0.6299005328403779e-3},
		{general, 0.6259893683876795, 0.2618824114553391, 0.6347722390609352e-3},
		{general, 0.5313795124811891, 0.5263245019338556e-1, 0.6203778981238834e-3},
		{general, 0.5893317955931995, 0.1061059730982005, 0.6308414671239979e-3},
		{general, 0.6426246321215801, 0.1594171564034221, 0.6362706466959498e-3},
		{general, 0.6511904367376113, 0.5354789536565540e-1, 0.6375414170333233e-3},
	})
	register(2030, []row{
		{octa, 0, 0, 0.4656031899197431e-4},
		{cube, 0, 0, 0.5421549195295507e-3},
		{diag, 0.2540835336814348e-1, 0, 0.1778522133346553e-3},
		{diag, 0.6399322800504915e-1, 0, 0.2811325405682796e-3},
		{diag, 0.1088269469804125, 0, 0.3548896312631459e-3},
		{diag, 0.1570670798818287, 0, 0.4090310897173364e-3},
		{diag, 0.2071163932282514, 0, 0.4493286134169965e-3},
		{diag, 0.2578914044450844, 0, 0.4793728447962723e-3},
		{diag, 0.3085687558169623, 0, 0.5015415319164265e-3},
		{diag, 0.3584719706267024, 0, 0.5175127372677937e-3},
		{diag, 0.4070135594428709, 0, 0.5285522262081019e-3},
		{diag, 0.4536618626222638, 0, 0.5356832703713962e-3},
		{diag, 0.4979195686463577, 0, 0.5397914736175170e-3},
		{diag, 0.5393075111126999, 0, 0.5416899441599930e-3},
		{diag, 0.6115617676843916, 0, 0.5419308476889938e-3},
		{diag, 0.6414308435160159, 0, 0.5416936902030596e-3},
		{diag, 0.6664099412721607, 0, 0.5419544338703164e-3},
		{diag, 0.6859161771214913, 0, 0.5428983656630974e-3},
		{diag, 0.6993625593503890, 0, 0.5442286500098193e-3},
		{diag, 0.7062393387719380, 0, 0.5452250345057301e-3},
		{planar, 0.7479028168349763e-1, 0, 0.2568002497728530e-3},
		{planar, 0.1848951153969366, 0, 0.3827211700292145e-3},
		{planar, 0.3059529066581305, 0, 0.4579491561917824e-3},
		{planar, 0.4285556101021362, 0, 0.5042003969083574e-3},
		{planar, 0.5468758653496526, 0, 0.5312708889976024e-3},
		{planar, 0.6565821978343439, 0, 0.5438401790747117e-3},
		{general, 0.1253901572367117, 0.3681917226439641e-1, 0.3316041873197344e-3},
		{general, 0.1775721510383941, 0.7982487607213301e-1, 0.3899113567153771e-3},
		{general, 0.2305693358216114, 0.1264640966592335, 0.4343343327201309e-3},
		{general, 0.2836502845992063, 0.1751585683418957, 0.4679415262318919e-3},
		{general, 0.3361794746232590, 0.2247995907632670, 0.4930847981631031e-3},
		{general, 0.3875979172264824, 0.2745299257422246, 0.5115031867540091e-3},
		{general, 0.4374019316999074, 0.3236373482441118, 0.5245217148457367e-3},
		{general, 0.4851275843340022, 0.3714967859436741, 0.5332041499895321e-3},
		{general, 0.5303391803806868, 0.4175353646321745, 0.5384583126021542e-3},
		{general, 0.5726197380596287, 0.4612084406355461, 0.5411067210798852e-3},
		{general, 0.2431520732564863, 0.4258040133043952e-1, 0.4259797391468714e-3},
		{general, 0.3002096800895869, 0.8869424306722722e-1, 0.4604931368460021e-3},
		{general, 0.3558554457457432, 0.1368811706510655, 0.4871814878255202e-3},
		{general, 0.4097782537048887, 0.1860739985015033, 0.5072242910074885e-3},
		{general, 0.4616337666067458, 0.2354235077395853, 0.5217069845235350e-3},
		{general, 0.5110707008417874, 0.2842074921347011, 0.5315785966280310e-3},
		{general, 0.5577415286163795, 0.3317784414984102, 0.5376833708758905e-3},
		{general, 0.6013060431366950, 0.3775299002040700, 0.5408032092069521e-3},
		{general, 0.3661596767261781, 0.4599367887164592e-1, 0.4842744917904866e-3},
		{general, 0.4237633153506581, 0.9404893773654421e-1, 0.5048926076188130e-3},
		{general, 0.4786328454658452, 0.1431377109091971, 0.5202607980478373e-3},
		{general, 0.5305702076789774, 0.1924186388843570, 0.5309932388325743e-3},
		{general, 0.5793436224231788, 0.2411590944775190, 0.5377419770895208e-3},
		{general, 0.6247069017094747, 0.2886871491583605, 0.5411696331677717e-3},
		{general, 0.4874315552535204, 0.4804978774953206e-1, 0.5197996293282420e-3},
		{general, 0.5427337322059053, 0.9716857199366664e-1, 0.5311120836622945e-3},
		{general, 0.5943493747246700, 0.1465205839795055, 0.5384309319956951e-3},
		{general, 0.6421314033564943, 0.1953579449803574, 0.5421859504051886e-3},
		{general, 0.6020628374713980, 0.4916375015738108e-1, 0.5390948355046314e-3},
		{general, 0.6529222529856881, 0.9861621540127005e-1, 0.5433312705027845e-3},
	})
	register(2354, []row{
		{octa, 0, 0, 0.3922616270665292e-4},
		{edge, 0, 0, 0.4703831750854424e-3},
		{cube, 0, 0, 0.4678202801282136e-3},
		{diag, 0.2290024646530589e-1, 0, 0.1437832228979900e-3},
		{diag, 0.5779086652271284e-1, 0, 0.2303572493577644e-3},
		{diag, 0.9863103576375984e-1, 0, 0.2933110752447454e-3},
		{diag, 0.1428155792982185, 0, 0.3402905998359838e-3},
		{diag, 0.1888978116601463, 0, 0.3759138466870372e-3},
		{diag, 0.2359091682970210, 0, 0.4030638447899798e-3},
		{diag, 0.2831228833706171, 0, 0.4236591432242211e-3},
		{diag, 0.3299495857966693, 0, 0.4390522656946746e-3},
		{diag, 0.3758840802660796, 0, 0.4502523466626247e-3},
		{diag, 0.4204751831009480, 0, 0.4580577727783541e-3},
		{diag, 0.4633068518751051, 0, 0.4631391616615899e-3},
		{diag, 0.5039849474507313, 0, 0.4660928953698676e-3},
		{diag, 0.5421265793440747, 0, 0.4674751807936953e-3},
		{diag, 0.6092660230557310, 0, 0.4676414903932920e-3},
		{diag, 0.6374654204984869, 0, 0.4674086492347870e-3},
		{diag, 0.6615136472609892, 0, 0.4674928539483207e-3},
		{diag, 0.6809487285958127, 0, 0.4680748979686447e-3},
		{diag, 0.6952980021665196, 0, 0.4690449806389040e-3},
		{diag, 0.7041245497695400, 0, 0.4699877075860818e-3},
		{planar, 0.6744033088306065e-1, 0, 0.2099942281069176e-3},
		{planar, 0.1678684485334166, 0, 0.3172269150712804e-3},
		{planar, 0.2793559049539613, 0, 0.3832051358546523e-3},
		{planar, 0.3935264218057639, 0, 0.4252193818146985e-3},
		{planar, 0.5052629268232558, 0, 0.4513807963755000e-3},
		{planar, 0.6107905315437531, 0, 0.4657797469114178e-3},
		{general, 0.1135081039843524, 0.3331954884662588e-1, 0.2733362800522836e-3},
		{general, 0.1612866626099378, 0.7247167465436538e-1, 0.3235485368463559e-3},
		{general, 0.2100786550168205, 0.1151539110849745, 0.3624908726013453e-3},
		{general, 0.2592282009459942, 0.1599491097143677, 0.3925540070712828e-3},
		{general, 0.3081740561320203, 0.2058699956028027, 0.4156129781116235e-3},
		{general, 0.3564289781578164, 0.2521624953502911, 0.4330644984623263e-3},
		{general, 0.4035587288240703, 0.2982090785797674, 0.4459677725921312e-3},
		{general, 0.4491671196373903, 0.3434762087235733, 0.4551593004456795e-3},
		{general, 0.4928854782917489, 0.3874831357203437, 0.4613341462749918e-3},
		{general, 0.5343646791958988, 0.4297814821746926, 0.4651019618269806e-3},
		{general, 0.5732683216530990, 0.4699402260943537, 0.4670249536100625e-3},
		{general, 0.2214131583218986, 0.3873602040643895e-1, 0.3549555576441708e-3},
		{general, 0.2741796504750071, 0.8089496256902012e-1, 0.3856108245249010e-3},
		{general, 0.3259797439149485, 0.1251732177620872, 0.4098622845756882e-3},
		{general, 0.3765441148826891, 0.1706260286403185, 0.4286328604268950e-3},
		{general, 0.4255773574530558, 0.2165115147300408, 0.4427802198993945e-3},
		{general, 0.4727795117058430, 0.2622089812225259, 0.4530473511488561e-3},
		{general, 0.5178546895819012, 0.3071721431296201, 0.4600805475703138e-3},
		{general, 0.5605141192097460, 0.3508998998801138, 0.4644599059958017e-3},
		{general, 0.6004763319352512, 0.3929160876166931, 0.4667274455712508e-3},
		{general, 0.3352842634946949, 0.4202563457288019e-1, 0.4069360518020356e-3},
		{general, 0.3891971629814670, 0.8614309758870850e-1, 0.4260442819919195e-3},
		{general, 0.4409875565542281, 0.1314500879380001, 0.4408678508029063e-3},
		{general, 0.4904893058592484, 0.1772189657383859, 0.4518748115548597e-3},
		{general, 0.5375056138769549, 0.2228277110050294, 0.4595564875375116e-3},
		{general, 0.5818255708669969, 0.2677179935014386, 0.4643988774315846e-3},
		{general, 0.6232334858144959, 0.3113675035544165, 0.4668827491646946e-3},
		{general, 0.4489485354492058, 0.4409162378368174e-1, 0.4400541823741973e-3},
		{general, 0.5015136875933150, 0.8939009917748489e-1, 0.4514512890193797e-3},
		{general, 0.5511300550512623, 0.1351806029383365, 0.4596198627347549e-3},
		{general, 0.5976720409858000, 0.1808370355053196, 0.4648659016801781e-3},
		{general, 0.6409956378989354, 0.2257852192301602, 0.4675502017157673e-3},
		{general, 0.5581222330827514, 0.4532173421637160e-1, 0.4598494476455523e-3},
		{general, 0.6074705984161695, 0.9117488031840314e-1, 0.4654916955152048e-3},
		{general, 0.6532272537379032, 0.1369294213140155, 0.4684709779505137e-3},
		{general, 0.6594761494500487, 0.4589901487275583e-1, 0.4691445539106986e-3},
	})
	register(2702, []row{
		{octa, 0, 0, 0.2998675149888161e-4},
		{cube, 0, 0, 0.4077860529495355e-3},
		{diag, 0.2065562538818703e-1, 0, 0.1185349192520667e-3},
		{diag, 0.5250918173022379e-1, 0, 0.1913408643425751e-3},
		{diag, 0.8993480082038376e-1, 0, 0.2452886577209897e-3},
		{diag, 0.1306023924436019, 0, 0.2862408183288702e-3},
		{diag, 0.1732060388531418, 0, 0.3178032258257357e-3},
		{diag, 0.2168727084820249, 0, 0.3422945667633690e-3},
		{diag, 0.2609528309173586, 0, 0.3612790520235922e-3},
		{diag, 0.3049252927938952, 0, 0.3758638229818521e-3},
		{diag, 0.3483484138084404, 0, 0.3868711798859953e-3},
		{diag, 0.3908321549106406, 0, 0.3949429933189938e-3},
		{diag, 0.4320210071894814, 0, 0.4006068107541156e-3},
		{diag, 0.4715824795890053, 0, 0.4043192149672723e-3},
		{diag, 0.5091984794078454, 0, 0.4064947495808078e-3},
		{diag, 0.5445580145650804, 0, 0.4075245619813152e-3},
		{diag, 0.6072575796841768, 0, 0.4076423540893566e-3},
		{diag, 0.6339484505755802, 0, 0.4074280862251555e-3},
		{diag, 0.6570718257486958, 0, 0.4074163756012244e-3},
		{diag, 0.6762557330090709, 0, 0.4077647795071246e-3},
		{diag, 0.6911161696923790, 0, 0.4084517552782530e-3},
		{diag, 0.7012841911659961, 0, 0.4092468459224052e-3},
		{diag, 0.7064559272410020, 0, 0.4097872687240906e-3},
		{planar, 0.6123554989894765e-1, 0, 0.1738986811745028e-3},
		{planar, 0.1533070348312393, 0, 0.2659616045280191e-3},
		{planar, 0.2563902605244206, 0, 0.3240596008171533e-3},
		{planar, 0.3629346991663361, 0, 0.3621195964432943e-3},
		{planar, 0.4683949968987538, 0, 0.3868838330760539e-3},
		{planar, 0.5694479240657953, 0, 0.4018911532693111e-3},
		{planar, 0.6634465430993955, 0, 0.4089929432983252e-3},
		{general, 0.1033958573552305, 0.3034544009063584e-1, 0.2279907527706409e-3},
		{general, 0.1473521412414395, 0.6618803044247135e-1, 0.2715205490578897e-3},
		{general, 0.1924552158705967, 0.1054431128987715, 0.3057917896703976e-3},
		{general, 0.2381094362890328, 0.1468263551238858, 0.3326913052452555e-3},
		{general, 0.2838121707936760, 0.1894486108187886, 0.3537334711890037e-3},
		{general, 0.3291323133373415, 0.2326374238761579, 0.3700567500783129e-3},
		{general, 0.3736896978741460, 0.2758485808485768, 0.3825245372589122e-3},
		{general, 0.4171406040760013, 0.3186179331996921, 0.3918125171518296e-3},
		{general, 0.4591677985256915, 0.3605329796303794, 0.3984720419937579e-3},
		{general, 0.4994733831718418, 0.4012147253586509, 0.4029746003338211e-3},
		{general, 0.5377731830445096, 0.4403050025570692, 0.4057428632156627e-3},
		{general, 0.5737917830001331, 0.4774565904277483, 0.4071719274114857e-3},
		{general, 0.2027323586271389, 0.3544122504976147e-1, 0.2990236950664119e-3},
		{general, 0.2516942375187273, 0.7418304388646328e-1, 0.3262951734212878e-3},
		{general, 0.3000227995257181, 0.1150502745727186, 0.3482634608242413e-3},
		{general, 0.3474806691046342, 0.1571963371209364, 0.3656596681700892e-3},
		{general, 0.3938103180359209, 0.1999631877247100, 0.3791740467794218e-3},
		{general, 0.4387519590455703, 0.2428073457846535, 0.3894034450156905e-3},
		{general, 0.4820503960077787, 0.2852575132906155, 0.3968600245508371e-3},
		{general, 0.5234573778475101, 0.3268884208674639, 0.4019931351420050e-3},
		{general, 0.5627318647235282, 0.3673033321675939, 0.4052108801278599e-3},
		{general, 0.5996390607156954, 0.4061211551830290, 0.4068978613940934e-3},
		{general, 0.3084780753791947, 0.3860125523100059e-1, 0.3454275351319704e-3},
		{general, 0.3589988275920223, 0.7928938987104867e-1, 0.3629963537007920e-3},
		{general, 0.4078628415881973, 0.1212614643030087, 0.3770187233889873e-3},
		{general, 0.4549287258889735, 0.1638770827382693, 0.3878608613694378e-3},
		{general, 0.5000278512957279, 0.2065965798260176, 0.3959065270221274e-3},
		{general, 0.5429785044928199, 0.2489436378852235, 0.4015286975463570e-3},
		{general, 0.5835939850491711, 0.2904811368946891, 0.4050866785614717e-3},
		{general, 0.6216870353444856, 0.3307941957666609, 0.4069320185051913e-3},
		{general, 0.4151104662709091, 0.4064829146052554e-1, 0.3760120964062763e-3},
		{general, 0.4649804275009218, 0.8258424547294756e-1, 0.3870969564418064e-3},
		{general, 0.5124695757009662, 0.1251841962027289, 0.3955287790534055e-3},
		{general, 0.5574711100606224, 0.1679107505976331, 0.4015361911302668e-3},
		{general, 0.5998597333287227, 0.2102805057358715, 0.4053836986719548e-3},
		{general, 0.6395007148516600, 0.2518418087774107, 0.4073578673299117e-3},
		{general, 0.5188456224746252, 0.4194321676077518e-1, 0.3954628379231406e-3},
		{general, 0.5664190707942778, 0.8457661551921498e-1, 0.4017645508847530e-3},
		{general, 0.6110464353283153, 0.1273652932519396, 0.4059030348651293e-3},
		{general, 0.6526430302051563, 0.1698173239076354, 0.4080565809484880e-3},
		{general, 0.6167551880377548, 0.4266398851548864e-1, 0.4063018753664651e-3},
		{general, 0.6607195418355383, 0.8551925814238349e-1, 0.4087191292799671e-3},
	})
	register(3074, []row{
		{octa, 0, 0, 0.2599095953754734e-4},
		{edge, 0, 0, 0.3603134089687541e-3},
		{cube, 0, 0, 0.3586067974412447e-3},
		{diag, 0.1886108518723392e-1, 0, 0.9831528474385880e-4},
		{diag, 0.4800217244625303e-1, 0, 0.1605023107954450e-3},
		{diag, 0.8244922058397242e-1, 0, 0.2072200131464099e-3},
		{diag, 0.1200408362484023, 0, 0.2431297618814187e-3},
		{diag, 0.1595773530809965, 0, 0.2711819064496707e-3},
		{diag, 0.2002635973434064, 0, 0.2932762038321116e-3},
		{diag, 0.2415127590139982, 0, 0.3107032514197368e-3},
		{diag, 0.2828584158458477, 0, 0.3243808058921213e-3},
		{diag, 0.3239091015338138, 0, 0.3349899091374030e-3},
		{diag, 0.3643225097962194, 0, 0.3430580688505218e-3},
		{diag, 0.4037897083691802, 0, 0.3490124109290343e-3},
		{diag, 0.4420247515194127, 0, 0.3532148948561955e-3},
		{diag, 0.4787572538464938, 0, 0.3559862669062833e-3},
		{diag, 0.5137265251275234, 0, 0.3576224317551411e-3},
		{diag, 0.5466764056654611, 0, 0.3584050533086076e-3},
		{diag, 0.6054859420813535, 0, 0.3584903581373224e-3},
		{diag, 0.6308106701764562, 0, 0.3582991879040586e-3},
		{diag, 0.6530369230179583, 0, 0.3582371187963125e-3},
		{diag, 0.6718609524611158, 0, 0.3584353631122350e-3},
		{diag, 0.6869676499894013, 0, 0.3589120166517785e-3},
		{diag, 0.6980467077240748, 0, 0.3595445704531601e-3},
		{diag, 0.7048241721250522, 0, 0.3600943557111074e-3},
		{planar, 0.5591105222058232e-1, 0, 0.1456447096742039e-3},
		{planar, 0.1407384078513916, 0, 0.2252370188283782e-3},
		{planar, 0.2364035438976309, 0, 0.2766135443474897e-3},
		{planar, 0.3360602737818170, 0, 0.3110729491500851e-3},
		{planar, 0.4356292630054665, 0, 0.3342506712303391e-3},
		{planar, 0.5321569415256174, 0, 0.3491981834026860e-3},
		{planar, 0.6232956305040555, 0, 0.3576003604348932e-3},
		{general, 0.9469870086838469e-1, 0.2778748387309470e-1, 0.1921921305788564e-3},
		{general, 0.1353170300568141, 0.6076569878628364e-1, 0.2301458216495632e-3},
		{general, 0.1771679481726077, 0.9703072762711040e-1, 0.2604248549522893e-3},
		{general, 0.2197066664231751, 0.1354112458524762, 0.2845275425870697e-3},
		{general, 0.2624783557374927, 0.1750996479744100, 0.3036870897974840e-3},
		{general, 0.3050969521214442, 0.2154896907449802, 0.3188414832298066e-3},
		{general, 0.3472252637196021, 0.2560954625740152, 0.3307046414722089e-3},
		{general, 0.3885610219026360, 0.2965070050624096, 0.3398330969031360e-3},
		{general, 0.4288273776062765, 0.3363641488734497, 0.3466757899705373e-3},
		{general, 0.4677662471302948, 0.3753400029836788, 0.3516095923230054e-3},
		{general, 0.5051333589553360, 0.4131297522144286, 0.3549645184048486e-3},
		{general, 0.5406942145810492, 0.4494423776081795, 0.3570415969441392e-3},
		{general, 0.5742204122576458, 0.4839938958841502, 0.3581251798496118e-3},
		{general, 0.1865407027225188, 0.3259144851070796e-1, 0.2543491329913348e-3},
		{general, 0.2321186453689432, 0.6835679505297343e-1, 0.2786711051330776e-3},
		{general, 0.2773159142523882, 0.1062284864451989, 0.2985552361083679e-3},
		{general, 0.3219200192237254, 0.1454404409323047, 0.3145867929154039e-3},
		{general, 0.3657032593944029, 0.1854018282582510, 0.3273290662067609e-3},
		{general, 0.4084376778363622, 0.2256297412014750, 0.3372705511943501e-3},
		{general, 0.4499004945751427, 0.2657104425000896, 0.3448274437851510e-3},
		{general, 0.4898758141326335, 0.3052755487631557, 0.3503592783048583e-3},
		{general, 0.5281547442266309, 0.3439863920645423, 0.3541854792663162e-3},
		{general, 0.5645346989813992, 0.3815229456121914, 0.3565995517909428e-3},
		{general, 0.5988181252159848, 0.4175752420966734, 0.3578802078302898e-3},
		{general, 0.2850425424471603, 0.3562149509862536e-1, 0.2958644592860982e-3},
		{general, 0.3324619433027876, 0.7330318886871096e-1, 0.3119548129116835e-3},
		{general, 0.3785848333076282, 0.1123226296008472, 0.3250745225005984e-3},
		{general, 0.4232891028562115, 0.1521084193337708, 0.3355153415935208e-3},
		{general, 0.4664287050829722, 0.1921844459223610, 0.3435847568549328e-3},
		{general, 0.5078458493735726, 0.2321360989678303, 0.3495786831622488e-3},
		{general, 0.5473779816204180, 0.2715886486360520, 0.3537767805534621e-3},
		{general, 0.5848617133811376, 0.3101924707571355, 0.3564459815421428e-3},
		{general, 0.6201348281584887, 0.3476121052890973, 0.3578464061225468e-3},
		{general, 0.3852191185387871, 0.3763224880035108e-1, 0.3239748762836212e-3},
		{general, 0.4325025061073423, 0.7659581935637134e-1, 0.3345491784174287e-3},
		{general, 0.4778486229734490, 0.1163381306083900, 0.3429126177301782e-3},
		{general, 0.5211663693009000, 0.1563890598752899, 0.3492420343097421e-3},
		{general, 0.5623469504853703, 0.1963320810149200, 0.3537399050235257e-3},
		{general, 0.6012718188659246, 0.2357847407258738, 0.3566209152659172e-3},
		{general, 0.6378179206390117, 0.2743846121244060, 0.3581084321919782e-3},
		{general, 0.4836936460214534, 0.3895902610739024e-1, 0.3426522117591512e-3},
		{general, 0.5293792562683797, 0.7871246819312640e-1, 0.3491848770121379e-3},
		{general, 0.5726281253100033, 0.1187963808202981, 0.3539318235231476e-3},
		{general, 0.6133658776169068, 0.1587914708061787, 0.3570231438458694e-3},
		{general, 0.6515085491865307, 0.1983058575227646, 0.3586207335051714e-3},
		{general, 0.5778692716064976, 0.3977209689791542e-1, 0.3541196205164025e-3},
		{general, 0.6207904288086192, 0.7990157592981152e-1, 0.3574296911573953e-3},
		{general, 0.6608688171046802, 0.1199671308754309, 0.3591993279818963e-3},
		{general, 0.6656263089489129, 0.4015955957805969e-1, 0.3595855034661997e-3},
	})
	register(3470, []row{
		{octa, 0, 0, 0.2040382730826330e-4},
		{cube, 0, 0, 0.3178149703889544e-3},
		{diag, 0.1721420832906233e-1, 0, 0.8288115128076111e-4},
		{diag, 0.4408875374981770e-1, 0, 0.1360883192522954e-3},
		{diag, 0.7594680813878681e-1, 0, 0.1766854454542662e-3},
		{diag, 0.1108335359204799, 0, 0.2083153161230153e-3},
		{diag, 0.1476517054388567, 0, 0.2333279544657158e-3},
		{diag, 0.1856731870860615, 0, 0.2532809539930247e-3},
		{diag, 0.2243634099428821, 0, 0.2692472184211158e-3},
		{diag, 0.2633006881662727, 0, 0.2819949946811885e-3},
		{diag, 0.3021340904916283, 0, 0.2920953593973030e-3},
		{diag, 0.3405594048030089, 0, 0.2999889782948352e-3},
		{diag, 0.3783044434007372, 0, 0.3060292120496902e-3},
		{diag, 0.4151194767407910, 0, 0.3105109167522192e-3},
		{diag, 0.4507705766443257, 0, 0.3136902387550312e-3},
		{diag, 0.4850346056573187, 0, 0.3157984652454632e-3},
		{diag, 0.5176950817792469, 0, 0.3170516518425422e-3},
		{diag, 0.5485384240820989, 0, 0.3176568425633755e-3},
		{diag, 0.6039117238943308, 0, 0.3177198411207062e-3},
		{diag, 0.6279956655573113, 0, 0.3175519492394733e-3},
		{diag, 0.6493636169568952, 0, 0.3174654952634756e-3},
		{diag, 0.6677644117704504, 0, 0.3175676415467654e-3},
		{diag, 0.6829368572115624, 0, 0.3178923417835410e-3},
		{diag, 0.6946195818184121, 0, 0.3183788287531909e-3},
		{diag, 0.7025711542057026, 0, 0.3188755151918807e-3},
		{diag, 0.7066004767140119, 0, 0.3191916889313849e-3},
		{planar, 0.5132537689946062e-1, 0, 0.1231779611744508e-3},
		{planar, 0.1297994661331225, 0, 0.1924661373839880e-3},
		{planar, 0.2188852049401307, 0, 0.2380881867403424e-3},
		{planar, 0.3123174824903457, 0, 0.2693100663037885e-3},
		{planar, 0.4064037620738195, 0, 0.2908673382834366e-3},
		{planar, 0.4984958396944782, 0, 0.3053914619381535e-3},
		{planar, 0.5864975046021365, 0, 0.3143916684147777e-3},
		{planar, 0.6686711634580175, 0, 0.3187042244055363e-3},
		{general, 0.8715738780835949e-1, 0.2557175233367578e-1, 0.1635219535869790e-3},
		{general, 0.1248383123134007, 0.5604823383376681e-1, 0.1968109917696070e-3},
		{general, 0.1638062693383378, 0.8968568601900764e-1, 0.2236754342249974e-3},
		{general, 0.2035586203373176, 0.1254086651976279, 0.2453186687017181e-3},
		{general, 0.2436798975293774, 0.1624780150162012, 0.2627551791580541e-3},
		{general, 0.2838207507773806, 0.2003422342683208, 0.2767654860152220e-3},
		{general, 0.3236787502217692, 0.2385628026255263, 0.2879467027765895e-3},
		{general, 0.3629849554840691, 0.2767731148783578, 0.2967639918918702e-3},
		{general, 0.4014948081992087, 0.3146542308245309, 0.3035900684660351e-3},
		{general, 0.4389818379260225, 0.3519196415895088, 0.3087338237298308e-3},
		{general, 0.4752331143674377, 0.3883050984023654, 0.3124608838860167e-3},
		{general, 0.5100457318374018, 0.4235613423908649, 0.3150084294226743e-3},
		{general, 0.5432238388954868, 0.4574484717196220, 0.3165958398598402e-3},
		{general, 0.5745758685072442, 0.4897311639255524, 0.3174320440957372e-3},
		{general, 0.1723981437592809, 0.3010630597881105e-1, 0.2182188909812599e-3},
		{general, 0.2149553257844597, 0.6326031554204695e-1, 0.2399727933921445e-3},
		{general, 0.2573256081247422, 0.9848566980258631e-1, 0.2579796133514652e-3},
		{general, 0.2993163751238106, 0.1350835952384266, 0.2727114052623535e-3},
		{general, 0.3407238005148000, 0.1725184055442181, 0.2846327656281355e-3},
		{general, 0.3813454978483264, 0.2103559279730725, 0.2941491102051334e-3},
		{general, 0.4209848104423343, 0.2482278774554860, 0.3016049492136107e-3},
		{general, 0.4594519699996300, 0.2858099509982883, 0.3072949726175648e-3},
		{general, 0.4965640166185930, 0.3228075659915428, 0.3114768142886460e-3},
		{general, 0.5321441655571562, 0.3589459907204151, 0.3143823673666223e-3},
		{general, 0.5660208438582166, 0.3939630088864310, 0.3162269764661535e-3},
		{general, 0.5980264315964364, 0.4276029922949089, 0.3172164663759821e-3},
		{general, 0.2644215852350733, 0.3300939429072552e-1, 0.2554575398967435e-3},
		{general, 0.3090113743443063, 0.6803887650078501e-1, 0.2701704069135677e-3},
		{general, 0.3525871079197808, 0.1044326136206709, 0.2823693413468940e-3},
		{general, 0.3950418005354029, 0.1416751597517679, 0.2922898463214289e-3},
		{general, 0.4362475663430163, 0.1793408610504821, 0.3001829062162428e-3},
		{general, 0.4760661812145854, 0.2170630750175722, 0.3062890864542953e-3},
		{general, 0.5143551042512103, 0.2545145157815807, 0.3108328279264746e-3},
		{general, 0.5509709026935597, 0.2913940101706601, 0.3140243146201245e-3},
		{general, 0.5857711030329428, 0.3274169910910705, 0.3160638030977130e-3},
		{general, 0.6186149917404392, 0.3623081329317265, 0.3171462882206275e-3},
		{general, 0.3586894569557064, 0.3497354386450040e-1, 0.2812388416031796e-3},
		{general, 0.4035266610019441, 0.7129736739757095e-1, 0.2912137500288045e-3},
		{general, 0.4467775312332510, 0.1084758620193165, 0.2993241256502206e-3},
		{general, 0.4883638346608543, 0.1460915689241772, 0.3057101738983822e-3},
		{general, 0.5281908348434601, 0.1837790832369980, 0.3105319326251432e-3},
		{general, 0.5661542687149311, 0.2212075390874021, 0.3139565514428167e-3},
		{general, 0.6021450102031451, 0.2580682841160985, 0.3161543006806366e-3},
		{general, 0.6360520783610050, 0.2940656362094121, 0.3172985960613294e-3},
		{general, 0.4521611065087196, 0.3631055365867002e-1, 0.2989400336901431e-3},
		{general, 0.4959365651560963, 0.7348318468484349e-1, 0.3054555883947677e-3},
		{general, 0.5376815804038283, 0.1111087643812648, 0.3104764960807702e-3},
		{general, 0.5773314480243767, 0.1488226085145408, 0.3141015825977616e-3},
		{general, 0.6148113245575056, 0.1862892274135151, 0.3164520621159896e-3},
		{general, 0.6500407462842380, 0.2231909701714456, 0.3176652305912204e-3},
		{general, 0.5425151448707213, 0.3718201306118944e-1, 0.3105097161023939e-3},
		{general, 0.5841860556907931, 0.7483616335067346e-1, 0.3143014117890550e-3},
		{general, 0.6234632186851500, 0.1125990834266120, 0.3168172866287200e-3},
		{general, 0.6602934551848842, 0.1501303813157619, 0.3181401865570968e-3},
		{general, 0.6278573968375105, 0.3767559930245720e-1, 0.3170663659156037e-3},
		{general, 0.6665611711264577, 0.7548443301360158e-1, 0.3185447944625510e-3},
	})
}
