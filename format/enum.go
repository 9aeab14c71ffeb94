package format

import "strconv"

// Enum is a value from the shared SAC enumeration space.
//
// SAC stores every enumerated header field (file type, event type,
// magnitude type, ...) as an integer drawn from one global dictionary of
// named codes. Each field accepts only a subset of the dictionary; the
// accepted subsets live in the schema package alongside the field table.
type Enum int32

const (
	ITime     Enum = 1  // time-series file
	IRLim     Enum = 2  // spectral file, real/imaginary
	IAmph     Enum = 3  // spectral file, amplitude/phase
	IXY       Enum = 4  // general x vs y file
	IUnkn     Enum = 5  // unknown
	IDisp     Enum = 6  // displacement (nm)
	IVel      Enum = 7  // velocity (nm/sec)
	IAcc      Enum = 8  // acceleration (nm/sec/sec)
	IB        Enum = 9  // begin time
	IDay      Enum = 10 // midnight of reference GMT day
	IO        Enum = 11 // event origin time
	IA        Enum = 12 // first arrival time
	IT0       Enum = 13 // user pick t0
	IT1       Enum = 14 // user pick t1
	IT2       Enum = 15 // user pick t2
	IT3       Enum = 16 // user pick t3
	IT4       Enum = 17 // user pick t4
	IT5       Enum = 18 // user pick t5
	IT6       Enum = 19 // user pick t6
	IT7       Enum = 20 // user pick t7
	IT8       Enum = 21 // user pick t8
	IT9       Enum = 22 // user pick t9
	IRadNV    Enum = 23 // radial (NTS)
	ITanNV    Enum = 24 // tangential (NTS)
	IRadEV    Enum = 25 // radial (event)
	ITanEV    Enum = 26 // tangential (event)
	INorth    Enum = 27 // north positive
	IEast     Enum = 28 // east positive
	IHorza    Enum = 29 // horizontal (arbitrary)
	IDown     Enum = 30 // down positive
	IUp       Enum = 31 // up positive
	ILLLBB    Enum = 32 // LLL broadband
	IWWSN1    Enum = 33 // WWSN 15-100
	IWWSN2    Enum = 34 // WWSN 30-100
	IHGLP     Enum = 35 // high-gain long-period
	ISRO      Enum = 36 // SRO
	INucl     Enum = 37 // nuclear event
	IPren     Enum = 38 // nuclear pre-shot event
	IPostn    Enum = 39 // nuclear post-shot event
	IQuake    Enum = 40 // earthquake
	IPreq     Enum = 41 // foreshock
	IPostq    Enum = 42 // aftershock
	IChem     Enum = 43 // chemical explosion
	IOther    Enum = 44 // other
	IGood     Enum = 45 // good data
	IGlch     Enum = 46 // glitches
	IDrop     Enum = 47 // dropouts
	ILowSN    Enum = 48 // low signal-to-noise
	IRldta    Enum = 49 // real data
	IVolts    Enum = 50 // velocity (volts)
	IXYZ      Enum = 51 // general xyz (3-D) file
	IMb       Enum = 52 // body-wave magnitude
	IMs       Enum = 53 // surface-wave magnitude
	IMl       Enum = 54 // local magnitude
	IMw       Enum = 55 // moment magnitude
	IMd       Enum = 56 // duration magnitude
	IMx       Enum = 57 // user-defined magnitude
	INEIC     Enum = 58 // NEIC
	IPdeq     Enum = 59 // PDE-Q
	IPdew     Enum = 60 // PDE-W
	IPDE      Enum = 61 // PDE
	IISC      Enum = 62 // ISC
	IREB      Enum = 63 // REB
	IUSGS     Enum = 64 // USGS
	IBrk      Enum = 65 // UC Berkeley
	ICaltech  Enum = 66 // Caltech
	ILLNL     Enum = 67 // LLNL
	IEvloc    Enum = 68 // EVLOC
	IJSOP     Enum = 69 // JSOP
	IUser     Enum = 70 // user-supplied
	IUnknown  Enum = 71 // unknown source
	IQB       Enum = 72 // quarry/mine blast, confirmed
	IQB1      Enum = 73 // quarry blast, designed shot info-ripple fired
	IQB2      Enum = 74 // quarry blast, observed shot info-ripple fired
	IQBX      Enum = 75 // quarry blast, single shot
	IQMT      Enum = 76 // quarry/mining induced events
	IEq       Enum = 77 // earthquake
	IEq1      Enum = 78 // earthquake in a swarm or aftershock sequence
	IEq2      Enum = 79 // felt earthquake
	IMe       Enum = 80 // marine explosion
	IEx       Enum = 81 // other explosion
	INu       Enum = 82 // nuclear explosion
	INc       Enum = 83 // nuclear cavity collapse
	IO_       Enum = 84 // other source, known origin
	IL        Enum = 85 // local event, unknown origin
	IR        Enum = 86 // regional event, unknown origin
	IT        Enum = 87 // teleseismic event, unknown origin
	IU        Enum = 88 // undetermined/conflicting information
	IEq3      Enum = 89 // damaging earthquake
	IEq0      Enum = 90 // probable earthquake
	IEx0      Enum = 91 // probable explosion
	IQC       Enum = 92 // mine collapse
	IQB0      Enum = 93 // probable mine blast
	IGey      Enum = 94 // geyser
	ILit      Enum = 95 // light
	IMet      Enum = 96 // meteoric event
	IOdor     Enum = 97 // odors
	IOS       Enum = 103 // other source of known origin
)

var enumNames = map[Enum]string{
	ITime: "itime", IRLim: "irlim", IAmph: "iamph", IXY: "ixy",
	IUnkn: "iunkn", IDisp: "idisp", IVel: "ivel", IAcc: "iacc",
	IB: "ib", IDay: "iday", IO: "io", IA: "ia",
	IT0: "it0", IT1: "it1", IT2: "it2", IT3: "it3", IT4: "it4",
	IT5: "it5", IT6: "it6", IT7: "it7", IT8: "it8", IT9: "it9",
	IRadNV: "iradnv", ITanNV: "itannv", IRadEV: "iradev", ITanEV: "itanev",
	INorth: "inorth", IEast: "ieast", IHorza: "ihorza", IDown: "idown",
	IUp: "iup", ILLLBB: "illlbb", IWWSN1: "iwwsn1", IWWSN2: "iwwsn2",
	IHGLP: "ihglp", ISRO: "isro", INucl: "inucl", IPren: "ipren",
	IPostn: "ipostn", IQuake: "iquake", IPreq: "ipreq", IPostq: "ipostq",
	IChem: "ichem", IOther: "iother", IGood: "igood", IGlch: "iglch",
	IDrop: "idrop", ILowSN: "ilowsn", IRldta: "irldta", IVolts: "ivolts",
	IXYZ: "ixyz", IMb: "imb", IMs: "ims", IMl: "iml", IMw: "imw",
	IMd: "imd", IMx: "imx", INEIC: "ineic", IPdeq: "ipdeq", IPdew: "ipdew",
	IPDE: "ipde", IISC: "iisc", IREB: "ireb", IUSGS: "iusgs", IBrk: "ibrk",
	ICaltech: "icaltech", ILLNL: "illnl", IEvloc: "ievloc", IJSOP: "ijsop",
	IUser: "iuser", IUnknown: "iunknown", IQB: "iqb", IQB1: "iqb1",
	IQB2: "iqb2", IQBX: "iqbx", IQMT: "iqmt", IEq: "ieq", IEq1: "ieq1",
	IEq2: "ieq2", IMe: "ime", IEx: "iex", INu: "inu", INc: "inc",
	IO_: "io_", IL: "il", IR: "ir", IT: "it", IU: "iu", IEq3: "ieq3",
	IEq0: "ieq0", IEx0: "iex0", IQC: "iqc", IQB0: "iqb0", IGey: "igey",
	ILit: "ilit", IMet: "imet", IOdor: "iodor", IOS: "ios",
}

var enumByName = func() map[string]Enum {
	m := make(map[string]Enum, len(enumNames))
	for e, name := range enumNames {
		m[name] = e
	}

	return m
}()

// Known reports whether e is a documented SAC enumeration code.
func (e Enum) Known() bool {
	_, ok := enumNames[e]
	return ok
}

// String returns the canonical lowercase SAC name of the code, or
// "unknown(<code>)" for undocumented values.
func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return name
	}

	return "unknown(" + strconv.Itoa(int(e)) + ")"
}

// EnumByName resolves a canonical SAC name (e.g. "itime") to its code.
func EnumByName(name string) (Enum, bool) {
	e, ok := enumByName[name]
	return e, ok
}
