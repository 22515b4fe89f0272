// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kpack tables are generated offline by sampling the
// Granlund-Montgomery magic-number search (Hacker's Delight 2nd ed., figure
// 10-8) for every divisor a Kronecker codec division step can need: 1,
// delta(s), delta(s)^2, ..., delta(s)^s, for every size s up to S_max(T).
// The generator verified every triple by exhaustive brute force at small
// bit widths and by extensive randomised and boundary sampling at 32 and 64
// bits, plus full pack/unpack round-trip and additivity simulation; see
// DESIGN.md.
//
// delta(s) is the positional base shared by all s components of a size-s
// pack. For unsigned T, components range over [0, delta(s)-1]. For signed
// T, components range symmetrically over [-lim(s), lim(s)] and delta(s)
// (the full per-component width, 2*lim(s)+1) must itself be odd and
// representable in T; this costs signed types roughly one bit of per-
// component magnitude relative to the unsigned case, which is why
// int32Lims[0] is about half of math.MaxInt32 rather than equal to it.
package kpack

// divConst32 holds a Granlund-Montgomery magic-division triple for 32-bit
// division: q = (mulhi(mp, n) + ((n - mulhi(mp, n)) >> sh1)) >> sh2.
type divConst32 struct {
	mp       uint32
	sh1, sh2 uint8
}

// divConst64 is the 64-bit counterpart of divConst32.
type divConst64 struct {
	mp       uint64
	sh1, sh2 uint8
}

var int32Deltas = [10]int32{
	2147483647, 65535, 1625, 255, 83, 39, 23, 15, 11, 9,
}

var int32Lims = [10]int32{
	1073741823, 32767, 812, 127, 41, 19, 11, 7, 5, 4,
}

var int32Klims = [10]int32{
	1073741823, 2147418112, 2145507812, 2114125312, 1969520321, 1759371880, 1702412723, 1281445312, 1178973845, 1743392200,
}

var int32Divcnst = [10][]divConst32{
	{{1, 0, 0}, {3, 1, 30}}, // size 1
	{{1, 0, 0}, {2147516417, 32, 15}, {1073774593, 32, 30}}, // size 2
	{{1, 0, 0}, {2706490161, 32, 10}, {3411010369, 32, 21}, {3955311, 1, 31}}, // size 3
	{{1, 0, 0}, {2155905153, 32, 7}, {2164359683, 32, 15}, {271605921, 32, 20}, {1090684169, 32, 30}}, // size 4
	{{1, 0, 0}, {827945503, 32, 4}, {1276831619, 32, 11}, {3938179451, 32, 19}, {1778369689, 1, 25}, {388087729, 1, 31}}, // size 5
	{{1, 0, 0}, {2753184165, 1, 5}, {2891549317, 32, 10}, {1186276643, 32, 14}, {3893420777, 32, 21}, {3194601663, 32, 26}, {2621211621, 32, 31}}, // size 6
	{{1, 0, 0}, {2987803337, 32, 4}, {4156943773, 32, 9}, {1488606649, 1, 13}, {1005838947, 32, 16}, {349857025, 32, 19}, {15211175, 32, 19}, {2708911861, 32, 31}}, // size 7
	{{1, 0, 0}, {2290649225, 32, 3}, {2443359173, 32, 7}, {917532273, 1, 11}, {1389999885, 32, 14}, {92666659, 32, 14}, {3163021961, 32, 23}, {2452812887, 1, 27}, {1799408049, 32, 30}}, // size 8
	{{1, 0, 0}, {3123612579, 32, 3}, {248469183, 1, 6}, {3304317439, 32, 10}, {600784989, 32, 11}, {3495476299, 32, 17}, {789361867, 1, 20}, {3100420577, 1, 24}, {1344615977, 32, 26}, {3911610115, 32, 31}}, // size 9
	{{1, 0, 0}, {954437177, 32, 1}, {3393554407, 32, 6}, {1508246403, 32, 8}, {2681326939, 32, 12}, {471836151, 1, 15}, {1059289655, 32, 17}, {3766363217, 32, 22}, {2400789535, 1, 25}, {2975891925, 32, 28}, {995507237, 1, 31}}, // size 10
}

var uint32Deltas = [10]uint32{
	4294967295, 65536, 1625, 256, 84, 40, 23, 16, 11, 9,
}

var uint32Lims = [10]uint32{
	4294967294, 65535, 1624, 255, 83, 39, 22, 15, 10, 8,
}

var uint32Klims = [10]uint32{
	4294967294, 4294967295, 4291015624, 4294967295, 4182119423, 4095999999, 3404825446, 4294967295, 2357947690, 3486784400,
}

var uint32Divcnst = [10][]divConst32{
	{{1, 0, 0}, {2147483649, 32, 31}}, // size 1
	{{1, 0, 0}, {1, 1, 15}, {1, 1, 31}}, // size 2
	{{1, 0, 0}, {2706490161, 32, 10}, {3411010369, 32, 21}, {3955311, 1, 31}}, // size 3
	{{1, 0, 0}, {1, 1, 7}, {1, 1, 15}, {1, 1, 23}, {1, 1, 31}}, // size 4
	{{1, 0, 0}, {2249744775, 1, 6}, {1246611823, 32, 11}, {3799197937, 32, 19}, {1494286703, 1, 25}, {2205430095, 32, 31}}, // size 5
	{{1, 0, 0}, {3435973837, 32, 5}, {1374389535, 32, 9}, {274877907, 32, 12}, {3518437209, 32, 21}, {1334532239, 1, 26}, {1125899907, 32, 30}}, // size 6
	{{1, 0, 0}, {2987803337, 32, 4}, {4156943773, 32, 9}, {1488606649, 1, 13}, {1005838947, 32, 16}, {349857025, 32, 19}, {15211175, 32, 19}, {2708911861, 32, 31}}, // size 7
	{{1, 0, 0}, {1, 1, 3}, {1, 1, 7}, {1, 1, 11}, {1, 1, 15}, {1, 1, 19}, {1, 1, 23}, {1, 1, 27}, {1, 1, 31}}, // size 8
	{{1, 0, 0}, {3123612579, 32, 3}, {248469183, 1, 6}, {3304317439, 32, 10}, {600784989, 32, 11}, {3495476299, 32, 17}, {789361867, 1, 20}, {3100420577, 1, 24}, {1344615977, 32, 26}, {3911610115, 32, 31}}, // size 9
	{{1, 0, 0}, {954437177, 32, 1}, {3393554407, 32, 6}, {1508246403, 32, 8}, {2681326939, 32, 12}, {471836151, 1, 15}, {1059289655, 32, 17}, {3766363217, 32, 22}, {2400789535, 1, 25}, {2975891925, 32, 28}, {995507237, 1, 31}}, // size 10
}

var int64Deltas = [21]int64{
	9223372036854775807, 4294967295, 2642245, 65535, 7131, 1625, 565, 255, 137, 83, 55, 39, 29, 23, 19, 15, 13, 11, 9, 9, 7,
}

var int64Lims = [21]int64{
	4611686018427387903, 2147483647, 1321122, 32767, 3565, 812, 282, 127, 68, 41, 27, 19, 14, 11, 9, 7, 6, 5, 4, 4, 3,
}

var int64Klims = [21]int64{
	4611686018427387903, 9223372032559808512, 9223362092156428062, 9222809099786125312, 9219814570333362325, 9206407546997070312, 9189865158000664062, 8939051673906445312, 8500708202786101988, 7758020593602926724, 6965616958276367187, 6190778827788212560, 5130314356479301094, 5796418162269374904, 7590563514937399149, 3284204177856445312, 4325207959690668966, 2779958656746115740, 675425858836496044, 6078832729528464400, 279272932041642003,
}

var int64Divcnst = [21][]divConst64{
	{{1, 0, 0}, {3, 1, 62}}, // size 1
	{{1, 0, 0}, {9223372039002259457, 64, 31}, {4611686020574871553, 64, 62}}, // size 2
	{{1, 0, 0}, {14641195736076001125, 64, 21}, {4794713792842004285, 1, 42}, {19889418140389, 1, 63}}, // size 3
	{{1, 0, 0}, {9223512776490647553, 64, 15}, {9223653518274068483, 64, 31}, {1152974282775633921, 64, 44}, {4611967504141844489, 64, 62}}, // size 4
	{{1, 0, 0}, {2744635459571705829, 1, 12}, {12172190515821067241, 64, 25}, {6991627030262668829, 64, 37}, {4015945073055096273, 64, 49}, {7117678340566835, 1, 63}}, // size 5
	{{1, 0, 0}, {11624286727063742065, 64, 10}, {14650177979708642307, 64, 21}, {16987927794017273, 1, 31}, {727186983443832867, 64, 38}, {14663669583684624853, 64, 53}, {9240367786888034369, 64, 63}}, // size 6
	{{1, 0, 0}, {2089542691535241245, 64, 6}, {11849775800727078967, 1, 18}, {6863636360934316309, 64, 26}, {6432419231057669271, 1, 36}, {4098621611318443241, 1, 45}, {1983746600156525139, 1, 54}, {67258094466432983, 1, 63}}, // size 7
	{{1, 0, 0}, {9259542123273814145, 64, 7}, {9295854053169005573, 64, 15}, {9332308382789276183, 64, 23}, {9368905670564920403, 64, 31}, {9405646477116155385, 64, 39}, {438318656813866255, 1, 47}, {512377726345330639, 1, 55}, {1189591956081874965, 64, 60}}, // size 8
	{{1, 0, 0}, {16023084268404647025, 1, 7}, {16102693532082545351, 64, 14}, {7522426175571408047, 64, 20}, {7028252193234600219, 64, 27}, {6566542195138896555, 64, 34}, {12270327021573412541, 64, 42}, {11464247144243772301, 64, 49}, {5355560709719718447, 64, 55}, {10007471107213488485, 64, 63}}, // size 9
	{{1, 0, 0}, {3555998857582564167, 64, 4}, {3489056108004579149, 1, 12}, {16914351947345835771, 64, 19}, {6521195931506828249, 64, 24}, {628549005446441277, 64, 27}, {15509257387401346209, 64, 38}, {5979472727672808177, 64, 43}, {18442711063665528835, 64, 51}, {9995027205196324177, 1, 57}, {2741375544954783209, 64, 61}}, // size 10
	{{1, 0, 0}, {3018558121152472083, 1, 5}, {1561112886899056269, 64, 8}, {3633135445874167317, 64, 15}, {16910594075341578785, 64, 23}, {1231038123051558243, 1, 28}, {11448891459933736645, 64, 34}, {3330586606526177933, 64, 38}, {7751183375188195917, 64, 45}, {1127444854572828497, 64, 48}, {10495486646205239827, 64, 57}, {12212929915584279071, 64, 63}}, // size 11
	{{1, 0, 0}, {11824835944685610011, 1, 5}, {12419109751136476565, 64, 10}, {1933333466616974029, 1, 15}, {16722114904883303093, 64, 21}, {13720709665545274333, 64, 26}, {4069292300518590879, 1, 31}, {9237348256093596921, 64, 36}, {15158725343333082127, 64, 42}, {6429112899965249823, 1, 47}, {10205479784071713411, 64, 52}, {16747454004630504059, 64, 58}, {9036257369786660173, 1, 63}}, // size 12
	{{1, 0, 0}, {1908283869694091547, 1, 4}, {4013976415563433943, 1, 9}, {6196060824627030499, 64, 13}, {1709258158517801517, 64, 16}, {7544311872078572213, 64, 23}, {260148685244088697, 64, 23}, {2296484945602989877, 64, 31}, {79189136055275513, 64, 31}, {3922821531973793297, 1, 43}, {12341829299687362711, 64, 48}, {13618570261723986439, 64, 53}, {3756846968751444535, 64, 56}, {16581945241385686223, 64, 63}}, // size 13
	{{1, 0, 0}, {7218291159277650633, 1, 4}, {17853937553382401565, 64, 9}, {12420130471918192393, 64, 13}, {8640090763073525143, 64, 17}, {6010497922138104447, 64, 21}, {16724863783340812375, 64, 27}, {5817343924640282565, 64, 30}, {4046847947575848741, 64, 34}, {2815198572226677385, 64, 38}, {15667192054131074143, 64, 45}, {5449458105784721441, 64, 48}, {11880674949788028577, 1, 54}, {2650590899158330257, 1, 58}, {14676406937647222173, 64, 63}}, // size 14
	{{1, 0, 0}, {15534100272597517151, 64, 4}, {3270336899494214137, 64, 6}, {2753967915363548747, 64, 10}, {106302935055408363, 1, 16}, {3905904633424202101, 64, 19}, {3289182849199328085, 64, 23}, {3711961436685921799, 1, 29}, {213218461360320733, 1, 33}, {3928413165277867863, 64, 36}, {13232549609357028591, 64, 42}, {11143199671037497761, 64, 46}, {320750109090444613, 1, 50}, {987762851726315591, 64, 51}, {13308804739049304805, 64, 59}, {11207414517094151415, 64, 63}}, // size 15
	{{1, 0, 0}, {9838263505978427529, 64, 3}, {2541551405711093779, 1, 7}, {3940771104339136805, 1, 11}, {11940008094959300491, 64, 15}, {12736008634623253857, 64, 19}, {13585075876931470781, 64, 23}, {3622686900515058875, 64, 25}, {15456797442197584533, 64, 31}, {16487250605010756835, 64, 35}, {17586400645344807291, 64, 39}, {312083281324909495, 1, 42}, {1562671771660540235, 1, 46}, {2896632828018546359, 1, 50}, {1422891793448539865, 64, 51}, {5837275867812195413, 1, 58}, {12951477302144931749, 64, 62}}, // size 16
	{{1, 0, 0}, {5675921253449092805, 64, 2}, {9496252866347520655, 1, 7}, {17195690424650506013, 64, 11}, {10581963338246465239, 64, 14}, {13023954877841803371, 64, 18}, {8014741463287263613, 64, 21}, {1281850297459097277, 1, 25}, {12140673459180707011, 64, 29}, {14942367334376254783, 64, 33}, {4597651487500386087, 64, 35}, {11317295969231719599, 64, 40}, {6964489827219519753, 64, 43}, {17143359574694202469, 64, 48}, {5274879869136677683, 64, 50}, {405759989933590591, 64, 50}, {31212306917968507, 64, 50}, {4917138812923038641, 64, 61}}, // size 17
	{{1, 0, 0}, {3353953467947191203, 64, 1}, {1067167012528651747, 1, 6}, {7095967667722983041, 64, 9}, {2196070959666399049, 1, 13}, {7506478193954891151, 64, 16}, {682407108541353741, 64, 16}, {15881474526053323427, 64, 24}, {5775081645837572155, 64, 26}, {15153730956618140923, 1, 31}, {12218354556482797287, 64, 34}, {8886076041078398027, 64, 37}, {7403658954882151735, 1, 41}, {9400146555851528491, 64, 44}, {13672940444874950533, 64, 48}, {1441169300654012795, 1, 51}, {10481129925364723891, 1, 55}, {2591709743799012389, 1, 58}, {7650346842730386911, 64, 61}}, // size 18
	{{1, 0, 0}, {16397105843297379215, 64, 3}, {10703666314374678099, 1, 6}, {12955737950259657651, 64, 9}, {1439526438917739739, 64, 9}, {10236632454526149255, 64, 15}, {9099228848467688227, 64, 18}, {13906069609731117635, 1, 22}, {3594757075937852139, 64, 23}, {399417452881983571, 64, 23}, {5680603774321544121, 64, 30}, {1750958234989271925, 1, 34}, {17953513163287843147, 64, 38}, {15958678367366971687, 64, 41}, {9924239690498398049, 1, 44}, {12609326117425755407, 64, 47}, {2802072470539056757, 64, 48}, {9962924339694424025, 64, 53}, {4427966373197521789, 64, 55}, {15743880438035633027, 64, 60}}, // size 19
	{{1, 0, 0}, {16397105843297379215, 64, 3}, {10703666314374678099, 1, 6}, {12955737950259657651, 64, 9}, {1439526438917739739, 64, 9}, {10236632454526149255, 64, 15}, {9099228848467688227, 64, 18}, {13906069609731117635, 1, 22}, {3594757075937852139, 64, 23}, {399417452881983571, 64, 23}, {5680603774321544121, 64, 30}, {1750958234989271925, 1, 34}, {17953513163287843147, 64, 38}, {15958678367366971687, 64, 41}, {9924239690498398049, 1, 44}, {12609326117425755407, 64, 47}, {2802072470539056757, 64, 48}, {9962924339694424025, 64, 53}, {4427966373197521789, 64, 55}, {15743880438035633027, 64, 60}, {13994560389365007135, 64, 63}}, // size 20
	{{1, 0, 0}, {2635249153387078803, 1, 2}, {5646962471543740291, 1, 5}, {13767832311573309661, 64, 8}, {15734665498940925327, 64, 11}, {2247809356991560761, 64, 11}, {321115622427365823, 64, 11}, {11743657048772235813, 64, 19}, {6710661170726991893, 64, 21}, {12230564135328125609, 1, 25}, {8764945202582193493, 64, 27}, {10017080231522506849, 64, 30}, {1431011461646072407, 64, 30}, {7720322653532915255, 1, 36}, {14952609558424266783, 64, 39}, {8544348319099581019, 64, 41}, {1083194941375204999, 1, 44}, {2789991287869250945, 64, 45}, {6377122943701145017, 64, 49}, {10705817954638539891, 1, 53}, {16658606873341766575, 64, 56}, {591663781538181613, 1, 58}}, // size 21
}

var uint64Deltas = [21]uint64{
	18446744073709551615, 4294967296, 2642245, 65536, 7131, 1625, 565, 256, 138, 84, 56, 40, 30, 23, 19, 16, 13, 11, 10, 9, 8,
}

var uint64Lims = [21]uint64{
	18446744073709551614, 4294967295, 2642244, 65535, 7130, 1624, 564, 255, 137, 83, 55, 39, 29, 22, 18, 15, 12, 10, 9, 8, 7,
}

var uint64Klims = [21]uint64{
	18446744073709551614, 18446744073709551615, 18446724184312856124, 18446744073709551615, 18439629140666724650, 18412815093994140624, 18379730316001328124, 18446744073709551615, 18151468971815029247, 17490122876598091775, 16985107389382393855, 16777215999999999999, 15943229999999999999, 11592836324538749808, 15181127029874798298, 18446744073709551615, 8650415919381337932, 5559917313492231480, 9999999999999999999, 12157665459056928800, 9223372036854775807,
}

var uint64Divcnst = [21][]divConst64{
	{{1, 0, 0}, {9223372036854775809, 64, 63}}, // size 1
	{{1, 0, 0}, {1, 1, 31}, {1, 1, 63}}, // size 2
	{{1, 0, 0}, {14641195736076001125, 64, 21}, {4794713792842004285, 1, 42}, {19889418140389, 1, 63}}, // size 3
	{{1, 0, 0}, {1, 1, 15}, {1, 1, 31}, {1, 1, 47}, {1, 1, 63}}, // size 4
	{{1, 0, 0}, {2744635459571705829, 1, 12}, {12172190515821067241, 64, 25}, {6991627030262668829, 64, 37}, {4015945073055096273, 64, 49}, {7117678340566835, 1, 63}}, // size 5
	{{1, 0, 0}, {11624286727063742065, 64, 10}, {14650177979708642307, 64, 21}, {16987927794017273, 1, 31}, {727186983443832867, 64, 38}, {14663669583684624853, 64, 53}, {9240367786888034369, 64, 63}}, // size 6
	{{1, 0, 0}, {2089542691535241245, 64, 6}, {11849775800727078967, 1, 18}, {6863636360934316309, 64, 26}, {6432419231057669271, 1, 36}, {4098621611318443241, 1, 45}, {1983746600156525139, 1, 54}, {67258094466432983, 1, 63}}, // size 7
	{{1, 0, 0}, {1, 1, 7}, {1, 1, 15}, {1, 1, 23}, {1, 1, 31}, {1, 1, 39}, {1, 1, 47}, {1, 1, 55}, {1, 1, 63}}, // size 8
	{{1, 0, 0}, {17110023488658134833, 64, 7}, {1983770839264711285, 64, 11}, {14720154633384524317, 64, 21}, {13653476761400138497, 64, 28}, {6881444701061719799, 1, 35}, {5046068702889888537, 1, 42}, {3343690965455146497, 1, 49}, {1263213625458823079, 64, 53}, {300078425853272049, 1, 63}}, // size 9
	{{1, 0, 0}, {9662580229085955609, 1, 6}, {10708314020112574181, 64, 12}, {4079357721947647307, 64, 17}, {12432328295459496555, 64, 25}, {9472250129873902137, 64, 31}, {10421065845906150135, 1, 38}, {2749315230439590643, 64, 42}, {16757730928393695347, 64, 51}, {6383897496530931561, 64, 56}, {1008943534765668379, 1, 63}}, // size 10
	{{1, 0, 0}, {2635249153387078803, 1, 5}, {5646962471543740291, 1, 11}, {13767832311573309661, 64, 17}, {15734665498940925327, 64, 23}, {2247809356991560761, 64, 26}, {321115622427365823, 64, 29}, {11743657048772235813, 64, 40}, {6710661170726991893, 64, 45}, {12230564135328125609, 1, 52}, {8764945202582193493, 64, 57}, {10017080231522506849, 64, 63}}, // size 11
	{{1, 0, 0}, {14757395258967641293, 64, 5}, {5165088340638674453, 1, 10}, {442721857769029239, 1, 15}, {3777893186295716171, 64, 19}, {5731772318583031879, 1, 26}, {4835703278458516699, 64, 30}, {15474250491067253437, 64, 37}, {12379400392853802749, 64, 42}, {1360296554856532783, 1, 47}, {15845632502852867519, 64, 53}, {12676506002282294015, 64, 58}, {2535301200456458803, 64, 61}}, // size 12
	{{1, 0, 0}, {9838263505978427529, 64, 4}, {2541551405711093779, 1, 9}, {3940771104339136805, 1, 14}, {11940008094959300491, 64, 19}, {12736008634623253857, 64, 24}, {13585075876931470781, 64, 29}, {3622686900515058875, 64, 32}, {15456797442197584533, 64, 39}, {16487250605010756835, 64, 44}, {17586400645344807291, 64, 49}, {312083281324909495, 1, 53}, {1562671771660540235, 1, 58}, {2896632828018546359, 1, 63}}, // size 13
	{{1, 0, 0}, {7218291159277650633, 1, 4}, {17853937553382401565, 64, 9}, {12420130471918192393, 64, 13}, {8640090763073525143, 64, 17}, {6010497922138104447, 64, 21}, {16724863783340812375, 64, 27}, {5817343924640282565, 64, 30}, {4046847947575848741, 64, 34}, {2815198572226677385, 64, 38}, {15667192054131074143, 64, 45}, {5449458105784721441, 64, 48}, {11880674949788028577, 1, 54}, {2650590899158330257, 1, 58}, {14676406937647222173, 64, 63}}, // size 14
	{{1, 0, 0}, {15534100272597517151, 64, 4}, {3270336899494214137, 64, 6}, {2753967915363548747, 64, 10}, {106302935055408363, 1, 16}, {3905904633424202101, 64, 19}, {3289182849199328085, 64, 23}, {3711961436685921799, 1, 29}, {213218461360320733, 1, 33}, {3928413165277867863, 64, 36}, {13232549609357028591, 64, 42}, {11143199671037497761, 64, 46}, {320750109090444613, 1, 50}, {987762851726315591, 64, 51}, {13308804739049304805, 64, 59}, {11207414517094151415, 64, 63}}, // size 15
	{{1, 0, 0}, {1, 1, 3}, {1, 1, 7}, {1, 1, 11}, {1, 1, 15}, {1, 1, 19}, {1, 1, 23}, {1, 1, 27}, {1, 1, 31}, {1, 1, 35}, {1, 1, 39}, {1, 1, 43}, {1, 1, 47}, {1, 1, 51}, {1, 1, 55}, {1, 1, 59}, {1, 1, 63}}, // size 16
	{{1, 0, 0}, {5675921253449092805, 64, 2}, {9496252866347520655, 1, 7}, {17195690424650506013, 64, 11}, {10581963338246465239, 64, 14}, {13023954877841803371, 64, 18}, {8014741463287263613, 64, 21}, {1281850297459097277, 1, 25}, {12140673459180707011, 64, 29}, {14942367334376254783, 64, 33}, {4597651487500386087, 64, 35}, {11317295969231719599, 64, 40}, {6964489827219519753, 64, 43}, {17143359574694202469, 64, 48}, {5274879869136677683, 64, 50}, {405759989933590591, 64, 50}, {31212306917968507, 64, 50}, {4917138812923038641, 64, 61}}, // size 17
	{{1, 0, 0}, {3353953467947191203, 64, 1}, {1067167012528651747, 1, 6}, {7095967667722983041, 64, 9}, {2196070959666399049, 1, 13}, {7506478193954891151, 64, 16}, {682407108541353741, 64, 16}, {15881474526053323427, 64, 24}, {5775081645837572155, 64, 26}, {15153730956618140923, 1, 31}, {12218354556482797287, 64, 34}, {8886076041078398027, 64, 37}, {7403658954882151735, 1, 41}, {9400146555851528491, 64, 44}, {13672940444874950533, 64, 48}, {1441169300654012795, 1, 51}, {10481129925364723891, 1, 55}, {2591709743799012389, 1, 58}, {7650346842730386911, 64, 61}}, // size 18
	{{1, 0, 0}, {14757395258967641293, 64, 3}, {5165088340638674453, 1, 6}, {442721857769029239, 1, 9}, {3777893186295716171, 64, 11}, {5731772318583031879, 1, 16}, {4835703278458516699, 64, 18}, {15474250491067253437, 64, 23}, {12379400392853802749, 64, 26}, {1360296554856532783, 1, 29}, {15845632502852867519, 64, 33}, {12676506002282294015, 64, 36}, {2535301200456458803, 64, 37}, {4056481920730334085, 64, 41}, {811296384146066817, 64, 42}, {2322443360429758899, 1, 49}, {4153837486827862103, 64, 51}, {8137815841988765843, 1, 56}, {2820903858849102351, 1, 59}, {8507059173023461587, 64, 62}}, // size 19
	{{1, 0, 0}, {16397105843297379215, 64, 3}, {10703666314374678099, 1, 6}, {12955737950259657651, 64, 9}, {1439526438917739739, 64, 9}, {10236632454526149255, 64, 15}, {9099228848467688227, 64, 18}, {13906069609731117635, 1, 22}, {3594757075937852139, 64, 23}, {399417452881983571, 64, 23}, {5680603774321544121, 64, 30}, {1750958234989271925, 1, 34}, {17953513163287843147, 64, 38}, {15958678367366971687, 64, 41}, {9924239690498398049, 1, 44}, {12609326117425755407, 64, 47}, {2802072470539056757, 64, 48}, {9962924339694424025, 64, 53}, {4427966373197521789, 64, 55}, {15743880438035633027, 64, 60}, {13994560389365007135, 64, 63}}, // size 20
	{{1, 0, 0}, {1, 1, 2}, {1, 1, 5}, {1, 1, 8}, {1, 1, 11}, {1, 1, 14}, {1, 1, 17}, {1, 1, 20}, {1, 1, 23}, {1, 1, 26}, {1, 1, 29}, {1, 1, 32}, {1, 1, 35}, {1, 1, 38}, {1, 1, 41}, {1, 1, 44}, {1, 1, 47}, {1, 1, 50}, {1, 1, 53}, {1, 1, 56}, {1, 1, 59}, {1, 1, 62}}, // size 21
}
