package domain

// Attacks returns a copy of the incident table in its recorded order.
func Attacks() []AttackRecord {
	out := make([]AttackRecord, len(attacks))
	copy(out, attacks)
	return out
}

// attacks is append-only; see the package documentation.
var attacks = []AttackRecord{
	{
		Date:        "2014-12-29",
		Severity:    1,
		Location:    "Santa Barbara, California, United States",
		Victim:      "Hal Finney",
		Type:        "swatting",
		Description: "Bitcoin developer SWATted after months of harassment & extortion",
		URL:         "https://archive.is/WvHB9",
	},
	{
		Date:        "2015-01-03",
		Severity:    3,
		Location:    "Atlanta, Georgia, United States",
		Victim:      "Amanda McCollum",
		Type:        "armed_robbery",
		Description: "BTM thieves strike smoke shop, fire gun",
		URL:         "https://archive.is/R98Nn",
	},
	{
		Date:        "2015-01-22",
		Severity:    1,
		Location:    "Amsterdam, Netherlands",
		Victim:      "Martin Wismeijer",
		Type:        "theft",
		Description: "Thieves steal 2 bitcoin ATMs",
		URL:         "https://archive.is/aP649",
	},
	{
		Date:        "2015-02-01",
		Severity:    3,
		Location:    "New York, New York, United States",
		Victim:      "Dean Katz",
		Type:        "armed_robbery",
		Description: "Bitcoin trader robbed of $12,000 at gunpoint",
		URL:         "https://archive.is/QeCwu",
	},
	{
		Date:        "2015-05-27",
		Severity:    4,
		Location:    "New York, New York, United States",
		Victim:      "Dwayne Richards",
		Type:        "kidnapping",
		Description: "Firefighter kidnapped, robbed of $1,100, & stabbed by crypto thieves",
		URL:         "https://web.archive.org/web/20170212084543/https://www.cnbc.com/2015/06/05/new-york-city-man-robbed-at-gunpoint-for-bitcoin.html",
	},
	{
		Date:        "2015-11-16",
		Severity:    1,
		Location:    "Delft, Netherlands",
		Victim:      "Robert Nederhoed",
		Type:        "theft",
		Description: "Thieves steal bitcoin ATM containing 2,000 EUR",
		URL:         "https://archive.is/jjSYk",
	},
	{
		Date:        "2016-07-11",
		Severity:    3,
		Location:    "Kaunas, Lithuania",
		Victim:      "Tadas Kasputis",
		Type:        "kidnapping",
		Description: "Cryptocurrency executive kidnapped at car wash",
		URL:         "https://archive.is/VDAjq",
	},
	{
		Date:        "2016-07-25",
		Severity:    3,
		Location:    "West Palm Beach, Florida, United States",
		Victim:      "Steve Manos",
		Type:        "armed_robbery",
		Description: "Bitcoin trader robbed of $28,000 at gunpoint",
		URL:         "https://archive.is/fQdH7",
	},
	{
		Date:        "2016-08-14",
		Severity:    2,
		Location:    "Toronto, Ontario, Canada",
		Victim:      "Multiple",
		Type:        "robbery",
		Description: "Police arrest teens in string of bitcoin-related robberies",
		URL:         "https://archive.is/wmHQ3",
	},
	{
		Date:        "2016-11-06",
		Severity:    1,
		Location:    "Oudenbosch, Netherlands",
		Victim:      "Tivoli Brasserie",
		Type:        "theft",
		Description: "Dutch Bitcoin ATM Owner Laughs at Thieves Who Took His Machine",
		URL:         "https://archive.is/ERN61",
	},
	{
		Date:        "2017-02-16",
		Severity:    2,
		Location:    "London, England",
		Victim:      "Josoj",
		Type:        "robbery",
		Description: "Robbery during Localbitcoins trade",
	},
	{
		Date:        "2017-02-26",
		Severity:    3,
		Location:    "Florianopolis, Brazil",
		Victim:      "Rocelo Lopes' wife",
		Type:        "kidnapping",
		Description: "Wife of crypto exchange owner kidnapped and ransomed",
		URL:         "https://archive.is/3Tzc8",
	},
	{
		Date:        "2017-03-14",
		Severity:    3,
		Location:    "Dubai, UAE",
		Victim:      "3 Indian Bitcoin traders",
		Type:        "kidnapping",
		Description: "3 Emiratis pose as cops, kidnap victims and rob them of 25 BTC",
		URL:         "https://archive.is/P5S6u",
	},
	{
		Date:        "2017-06-17",
		Severity:    5,
		Location:    "Gifu, Japan",
		Victim:      "Miyuki Noda",
		Type:        "murder",
		Description: "Woman strangled, attacker takes 100,000 yen worth of BTC",
		URL:         "https://archive.is/OmqRM",
	},
	{
		Date:        "2017-09-04",
		Severity:    4,
		Location:    "Kyiv, Ukraine",
		Victim:      "Alexey Sherstne",
		Type:        "torture",
		Description: "Man tortured for $50k in Bitcoins",
		URL:         "https://archive.is/2aCmP ",
	},
	{
		Date:        "2017-10-16",
		Severity:    1,
		Location:    "Durham, North Carolina, United States",
		Victim:      "Jameson Lopp",
		Type:        "swatting",
		Description: "Bitcoin developer swatted & extorted",
		URL:         "https://archive.is/p5gEf",
	},
	{
		Date:        "2017-10-15",
		Severity:    3,
		Location:    "Toulouse, France",
		Victim:      "Multiple",
		Type:        "armed_robbery",
		Description: "4 bitcoin traders robbed at gunpoint",
		URL:         "https://archive.is/QHlfc",
	},
	{
		Date:        "2017-10-15",
		Severity:    3,
		Location:    "Los Angeles, California, United States",
		Victim:      "Multiple",
		Type:        "armed_robbery",
		Description: "Discount Bitcoin Bandits committed 5 robberies at gunpoint",
		URL:         "https://archive.is/D7MJS",
	},
	{
		Date:        "2017-11-04",
		Severity:    2,
		Location:    "New York, New York, United States",
		Victim:      "Unidentified",
		Type:        "robbery",
		Description: "Man robbed of $1.8M of ETH",
		URL:         "https://archive.is/Lt2bJ",
	},
	{
		Date:        "2017-11-15",
		Severity:    3,
		Location:    "Istanbul, Turkey",
		Victim:      "Unidentified",
		Type:        "kidnapping",
		Description: "Gang stole $2.83M in BTC from businessman",
		URL:         "https://archive.is/spoUT",
	},
	{
		Date:        "2017-12-15",
		Severity:    1,
		Location:    "Reykjavik, Iceland",
		Victim:      "Unidentified",
		Type:        "theft",
		Description: "600 Bitcoin ASICs stolen",
		URL:         "https://archive.is/0guO1",
	},
	{
		Date:        "2017-12-26",
		Severity:    3,
		Location:    "Kyiv, Ukraine",
		Victim:      "Pavel Lerner",
		Type:        "kidnapping",
		Description: "Bitcoin exchange owner kidnapped & ransomed for $1M",
		URL:         "https://archive.is/xsQAx",
	},
	{
		Date:        "2018-01-01",
		Severity:    3,
		Location:    "Los Angeles, California, United States",
		Victim:      "T.W.",
		Type:        "home_invasion",
		Description: "Home invasion by FBI impersonator who demanded laptop passwords to access cryptocurrency",
	},
	{
		Date:        "2018-01-03",
		Severity:    3,
		Location:    "Milwaukee, Wisconsin, United States",
		Victim:      "Dallas",
		Type:        "armed_robbery",
		Description: "Convicted felon accused of firing gun inside downtown Milwaukee condo during Bitcoin sale",
		URL:         "https://archive.is/Sj4Op",
	},
	{
		Date:        "2018-01-14",
		Severity:    4,
		Location:    "Leningrad Oblast, Russia",
		Victim:      "Pavel Nyashin",
		Type:        "torture",
		Description: "Blogger Who Boasted About Crypto Wealth Beaten and Robbed For $425k",
		URL:         "https://archive.is/OaOlP",
	},
	{
		Date:        "2018-01-15",
		Severity:    3,
		Location:    "Phuket, Thailand",
		Victim:      "Maxsim Latsoka & Anna Nikurina",
		Type:        "kidnapping",
		Description: "Russian gang steals 100,000 Euros in BTC from young Russian couple",
		URL:         "https://archive.is/9chQq",
	},
	{
		Date:        "2018-01-18",
		Severity:    2,
		Location:    "North Point, Hong Kong",
		Victim:      "____ Lee",
		Type:        "robbery",
		Description: "Bitcoin trader lured to bogus meeting and robbed of HK$1.4M",
		URL:         "https://archive.is/TfDBF",
	},
	{
		Date:        "2018-01-23",
		Severity:    3,
		Location:    "Ottawa, Canada",
		Victim:      "Canadian Bitcoins",
		Type:        "armed_robbery",
		Description: "Failed armed robbery attempt of Canadian bitcoin exchange",
		URL:         "https://archive.is/Qzqb5",
	},
	{
		Date:        "2018-01-27",
		Severity:    3,
		Location:    "Moulsford, Oxfordshire, England",
		Victim:      "Danny Aston & Amy Jay",
		Type:        "home_invasion",
		Description: "Armed home invasion of Bitcoin trading firm owner",
		URL:         "https://archive.is/rpCUg",
	},
	{
		Date:        "2018-01-29",
		Severity:    3,
		Location:    "Cumming, Georgia, United States",
		Victim:      "Unidentified",
		Type:        "home_invasion",
		Description: "Five men arrested for planning armed home invasion of bitcoin owner",
		URL:         "https://archive.is/hVDKF",
	},
	{
		Date:        "2018-01-15",
		Severity:    3,
		Location:    "Odessa, Ukraine",
		Victim:      "Unidentified",
		Type:        "robbery",
		Description: "Several men pose as bitcoin sellers, beat and rob buyer of 1.5 Million UAH ($57,000 USD)",
	},
	{
		Date:        "2018-02-09",
		Severity:    4,
		Location:    "Amreli, India",
		Victim:      "Sailesh Bhatt",
		Type:        "torture",
		Description: "Police Officers Beat, Extorted 200 BTC from Businessman",
		URL:         "https://archive.is/VctPq",
	},
	{
		Date:        "2018-02-21",
		Severity:    2,
		Location:    "Taichung, Taiwan",
		Victim:      "____ Tai",
		Type:        "robbery",
		Description: "Four men assault bitcoin seller & transfer 18 BTC",
		URL:         "https://archive.is/cGzd6",
	},
	{
		Date:        "2018-02-19",
		Severity:    4,
		Location:    "Moscow, Russia",
		Victim:      "Unidentified",
		Type:        "torture",
		Description: "Crypto investor has face mutilated, robbed of $1M in BTC",
		URL:         "https://archive.is/wUxu7",
	},
	{
		Date:        "2018-02-23",
		Severity:    4,
		Location:    "Moscow, Russia",
		Victim:      "Yury Mayorov",
		Type:        "torture",
		Description: "Crypto Developer Beaten, Robbed Of 300 BTC",
		URL:         "https://archive.is/YDbVR",
	},
	{
		Date:        "2018-03-01",
		Severity:    3,
		Location:    "Killingly, Connecticut, United States",
		Victim:      "Undisclosed woman",
		Type:        "home_invasion",
		Description: "2 women invaded home of another woman who had opened a Bitcoin account",
		URL:         "https://archive.is/wcpmV",
	},
	{
		Date:        "2018-03-15",
		Severity:    3,
		Location:    "Kyiv, Ukraine",
		Victim:      "Unidentified Miner",
		Type:        "kidnapping",
		Description: "Miner kidnapped, extorted for $50,000. Kidnappers caught 8 months later",
		URL:         "https://archive.is/ziAAR",
	},
	{
		Date:        "2018-03-22",
		Severity:    2,
		Location:    "Irving & Mesquite, Texas, United States",
		Victim:      "Multiple gas stations",
		Type:        "robbery",
		Description: "Robbers douse clerks with pepper spray, steal from Bitcoin ATMs",
		URL:         "https://archive.is/rODUM",
	},
	{
		Date:        "2018-04-08",
		Severity:    2,
		Location:    "Singapore",
		Victim:      "Pang Joon Hau",
		Type:        "robbery",
		Description: "Man seeking to buy BTC robbed of $365,000",
		URL:         "https://archive.is/IQMXP",
	},
	{
		Date:        "2018-04-11",
		Severity:    3,
		Location:    "Miami, Florida, United States",
		Victim:      "Ryan Rice",
		Type:        "armed_robbery",
		Description: "Bitcoin buyer shoots robber in self defense",
		URL:         "https://archive.is/wWiYd",
	},
	{
		Date:        "2018-04-25",
		Severity:    3,
		Location:    "Dubai, UAE",
		Victim:      "2 unidentified Asian brothers",
		Type:        "armed_robbery",
		Description: "Gang of 10 robbed two brothers of AED 7m ($1.9m) in cash",
		URL:         "https://archive.is/N5O0K",
	},
	{
		Date:        "2018-06-06",
		Severity:    3,
		Location:    "Milan, Italy",
		Victim:      "Unidentified 22-year-old",
		Type:        "armed_robbery",
		Description: "Robbers attempt bitcoin purchase with counterfeit money, beat victims and fire gun, take 50,000 euros",
		URL:         "https://archive.is/ls1QA",
	},
	{
		Date:        "2018-06-13",
		Severity:    3,
		Location:    "China",
		Victim:      "Synth",
		Type:        "home_invasion",
		Description: "Home invasion of Skycoin architect resulted in theft of 18.88 BTC and 6,466 SKY",
		URL:         "https://archive.is/fc3Mq",
	},
	{
		Date:        "2018-06-19",
		Severity:    3,
		Location:    "Wels, Austria",
		Victim:      "Unidentified",
		Type:        "home_invasion",
		Description: "$250,000 in cryptocurrency taken by robbers posing as postmen",
		URL:         "https://archive.is/kabJg",
	},
	{
		Date:        "2018-07-06",
		Severity:    3,
		Location:    "Northborough, Massachusetts, United States",
		Victim:      "Austin Nedved",
		Type:        "home_invasion",
		Description: "Armed home invasion of Localbitcoins trader",
		URL:         "https://archive.is/4of2h",
	},
	{
		Date:        "2018-09-07",
		Severity:    4,
		Location:    "New York, New York, United States",
		Victim:      "Nicholas Truglia",
		Type:        "torture",
		Description: "Friends accused of torturing pal to steal his cryptocurrency",
		URL:         "https://archive.is/PJYDN",
	},
	{
		Date:        "2018-11-01",
		Severity:    4,
		Location:    "Manchester, England",
		Victim:      "Kieran Hamilton",
		Type:        "torture",
		Description: "Crypto trader stabbed, robbed by home invaders",
	},
	{
		Date:        "2018-11-16",
		Severity:    4,
		Location:    "Lanseria, South Africa",
		Victim:      "Andrew ______",
		Type:        "torture",
		Description: "Bitcoin trader drugged, beaten, and tortured before transferring BTC to attackers",
		URL:         "https://archive.is/ASDBT",
	},
	{
		Date:        "2019-02-10",
		Severity:    4,
		Location:    "Drouwenerveen, Netherlands",
		Victim:      "Tjeerd H.",
		Type:        "torture",
		Description: "Bitcoin trader tortured with drill in front of daughter",
		URL:         "https://archive.is/drBqh",
	},
	{
		Date:        "2019-03-12",
		Severity:    1,
		Location:    "Far Cotton, Northampton, England",
		Victim:      "Costcutters",
		Type:        "theft",
		Description: "Bitcoin machine stolen during robbery",
		URL:         "https://archive.is/0lCv5",
	},
	{
		Date:        "2019-05-14",
		Severity:    3,
		Location:    "Oslo, Norway",
		Victim:      "Undisclosed",
		Type:        "home_invasion",
		Description: "Bitcoin millionaire escapes armed home invader by jumping off balcony",
		URL:         "https://archive.is/HfBWe",
	},
	{
		Date:        "2019-06-30",
		Severity:    4,
		Location:    "Jaipur, Rajasthan, India",
		Victim:      "Luftan Shaikh, Mohammad Shazad, Malang Shah",
		Type:        "torture",
		Description: "Criminal Gang Abducts & Tortures Cryptocurrency Traders, Demands 80 BTC Ransom",
		URL:         "https://archive.is/8PY9R",
	},
	{
		Date:        "2019-07-15",
		Severity:    3,
		Location:    "Sparkhill, Birmingham, England",
		Victim:      "Bitcoin Exchange",
		Type:        "armed_robbery",
		Description: "Masked raiders hold up Bitcoin Exchange in front of dozens of witnesses",
		URL:         "https://archive.is/fAoh0",
	},
	{
		Date:        "2019-07-26",
		Severity:    2,
		Location:    "Wels, Austria",
		Victim:      "Unidentified",
		Type:        "robbery",
		Description: "Man raided in office",
		URL:         "https://archive.is/HHicH",
	},
	{
		Date:        "2019-08-26",
		Severity:    5,
		Location:    "Dehradun, India",
		Victim:      "Abdul Shakoor",
		Type:        "murder",
		Description: "Kingpin of Kerala bitcoin scam murdered in Dehradun",
		URL:         "https://archive.is/O4Wno",
	},
	{
		Date:        "2019-11-19",
		Severity:    1,
		Location:    "Vernon, British Columbia, Canada",
		Victim:      "Simply Delicious Food Market",
		Type:        "theft",
		Description: "Thieves break into BTM",
		URL:         "https://archive.is/saynt",
	},
	{
		Date:        "2020-01-01",
		Severity:    5,
		Location:    "Abraka, Nigeria",
		Victim:      "Iroro Wisdom Ovie",
		Type:        "murder",
		Description: "Man shot & killed by home invaders seeking $10,000 in bitcoin",
	},
	{
		Date:        "2020-01-15",
		Severity:    3,
		Location:    "Preston, Lancashire, England",
		Victim:      "17 y/o trader",
		Type:        "kidnapping",
		Description: "Trader lured to apartment, kidnapped, driven around in car trunk",
	},
	{
		Date:        "2020-01-08",
		Severity:    3,
		Location:    "Bangkok, Thailand",
		Victim:      "Mark Cheng Jin Quan",
		Type:        "kidnapping",
		Description: "Blockchain advisor kidnapped, held at gunpoint, extorted for $60,000 in bitcoin",
		URL:         "https://archive.is/ad8AS",
	},
	{
		Date:        "2020-01-21",
		Severity:    1,
		Location:    "Philadelphia, Pennsylvania, United States",
		Victim:      "Mayfair Quick Mart",
		Type:        "theft",
		Description: "2 men break into BTM, steal cash box",
		URL:         "https://archive.is/MMAtb",
	},
	{
		Date:        "2020-02-10",
		Severity:    3,
		Location:    "Carlisle, England",
		Victim:      "Unidentified couple",
		Type:        "home_invasion",
		Description: "Home invaders force victims to create crypto exchange accounts",
		URL:         "https://archive.is/yLi4j",
	},
	{
		Date:        "2020-03-18",
		Severity:    3,
		Location:    "Blantyre, Scotland",
		Victim:      "Unidentified siblings",
		Type:        "home_invasion",
		Description: "Home invader beats woman with Toblerone, forces victim to transfer $200,000 of BTC",
		URL:         "https://archive.is/TZ9oq",
	},
	{
		Date:        "2020-05-17",
		Severity:    3,
		Location:    "Ho Chi Minh City, Vietnam",
		Victim:      "Le Duc Nguyen",
		Type:        "kidnapping",
		Description: "HCMC cops charged with $1.6 mln bitcoin robbery",
		URL:         "https://archive.md/T9g5e",
	},
	{
		Date:        "2020-05-19",
		Severity:    1,
		Location:    "East Lansdowne, Pennsylvania, United States",
		Victim:      "Exxon Gas Station",
		Type:        "theft",
		Description: "2 subjects pry open BTM in broad daylight",
	},
	{
		Date:        "2020-05-23",
		Severity:    3,
		Location:    "Irvington, New York, United States",
		Victim:      "Ellis Pinsky",
		Type:        "home_invasion",
		Description: "2 men commit home invasion of hacker, seeking tens of millions of dollars in bitcoin",
		URL:         "https://archive.is/ldlEZ",
	},
	{
		Date:        "2020-09-01",
		Severity:    3,
		Location:    "Kent, England",
		Victim:      "Male Freshman",
		Type:        "armed_robbery",
		Description: "Student robbed of bitcoin at knifepoint during first week at university",
		URL:         "https://archive.is/wH3Y2",
	},
	{
		Date:        "2020-10-01",
		Severity:    4,
		Location:    "Kyiv, Ukraine",
		Victim:      "Unidentified",
		Type:        "torture",
		Description: "Police kidnap a businessman, torture him, and force his wife to send them 7 bitcoin",
		URL:         "https://archive.is/LB3Nm",
	},
	{
		Date:        "2020-10-07",
		Severity:    1,
		Location:    "Kelowna, British Columbia, Canada",
		Victim:      "Mike's Produce",
		Type:        "theft",
		Description: "Botched Bitcoin theft destroys deli",
		URL:         "https://archive.is/xk8r2",
	},
	{
		Date:        "2020-10-22",
		Severity:    1,
		Location:    "Riga, Latvia",
		Victim:      "Undisclosed",
		Type:        "planned",
		Description: "Man arrested for planning kidnapping and killing owners of cryptocurrencies",
		URL:         "https://archive.is/3LnrJ",
	},
	{
		Date:        "2020-12-01",
		Severity:    2,
		Location:    "Dubai, UAE",
		Victim:      "Undisclosed",
		Type:        "robbery",
		Description: "4 Ukrainian men attack Bitcoin buyer with deodorant",
	},
	{
		Date:        "2020-12-24",
		Severity:    4,
		Location:    "Ternopil, Ukraine",
		Victim:      "Undisclosed",
		Type:        "torture",
		Description: "Man kidnapped and tortured for $800k",
		URL:         "https://archive.is/bx8kT",
	},
	{
		Date:        "2021-01-01",
		Severity:    2,
		Location:    "Sliema, Malta",
		Victim:      "Dillon Attard",
		Type:        "robbery",
		Description: "Victim describes his disbelief as $700,000 stolen in front of him",
		URL:         "https://archive.is/ypS03",
	},
	{
		Date:        "2021-01-05",
		Severity:    2,
		Location:    "Chai Wan, Hong Kong",
		Victim:      "37 y/o man",
		Type:        "robbery",
		Description: "Robbers take US$387,000 in cash, 15BTC from man after in-person trade",
		URL:         "https://archive.is/ps31W",
	},
	{
		Date:        "2021-01-18",
		Severity:    3,
		Location:    "Kwun Tong, Hong Kong",
		Victim:      "Unidentified Woman",
		Type:        "armed_robbery",
		Description: "Gang snatches HK$3.5 million from trader at knifepoint",
		URL:         "https://archive.is/3mR44",
	},
	{
		Date:        "2021-01-23",
		Severity:    4,
		Location:    "Olsztyn, Poland",
		Victim:      "Physical Exchange Employees",
		Type:        "armed_robbery",
		Description: "Two employees shot at physical Bitcoin exchange FlyingAtom",
		URL:         "https://archive.is/YOvMq",
	},
	{
		Date:        "2021-02-04",
		Severity:    3,
		Location:    "Stockholm, Sweden",
		Victim:      "Married Couple",
		Type:        "home_invasion",
		Description: "Armed robbers invade home and force owners to hand over 1M+ SEK in BTC",
		URL:         "https://archive.is/5qCBI",
	},
	{
		Date:        "2021-02-01",
		Severity:    3,
		Location:    "Gujranwala, Pakistan",
		Victim:      "Swiss & German",
		Type:        "armed_robbery",
		Description: "Armed robbers take $93k in BTC at gunpoint",
	},
	{
		Date:        "2021-03-10",
		Severity:    4,
		Location:    "Recife, Brazil",
		Victim:      "Bank director",
		Type:        "torture",
		Description: "Man kidnapped by a gang, tied up, and had two teeth knocked out. Released after 4.78 BTC transferred",
		URL:         "https://archive.is/KrFtE",
	},
	{
		Date:        "2021-03-16",
		Severity:    2,
		Location:    "Munich, Germany",
		Victim:      "29 y/o Berlin man",
		Type:        "robbery",
		Description: "Robbers steal bitcoin worth almost 100,000 Euros",
		URL:         "https://archive.is/H8Qix",
	},
	{
		Date:        "2021-03-18",
		Severity:    3,
		Location:    "Mendoza, Argentina",
		Victim:      "F.T.",
		Type:        "armed_robbery",
		Description: "Armed robbers steal iPhone, $5k at gunpoint",
		URL:         "https://archive.is/DpOQe",
	},
	{
		Date:        "2021-04-08",
		Severity:    3,
		Location:    "Zaporizhya, Ukraine",
		Victim:      "30 year old miner",
		Type:        "armed_robbery",
		Description: "Mining farm owner shoots at looters",
		URL:         "https://archive.is/WT3sm",
	},
	{
		Date:        "2021-04-13",
		Severity:    3,
		Location:    "Calgary, Alberta, Canada",
		Victim:      "Undisclosed",
		Type:        "home_invasion",
		Description: "Armed men force their way into Canyon Meadows home, steal cryptocurrency keys",
		URL:         "https://archive.is/GP76C",
	},
	{
		Date:        "2021-05-01",
		Severity:    3,
		Location:    "Bradford, Yorkshire, England",
		Victim:      "14 y/o boy",
		Type:        "kidnapping",
		Description: "Teen bitcoin trader kidnapped & ransomed",
		URL:         "https://archive.is/SUsgH",
	},
	{
		Date:        "2021-05-01",
		Severity:    2,
		Location:    "Bethesda, Maryland, United States",
		Victim:      "___ Ghershony",
		Type:        "robbery",
		Description: "Son drugs father, steals $400K in BTC",
		URL:         "https://archive.is/ezAnH",
	},
	{
		Date:        "2021-06-11",
		Severity:    2,
		Location:    "Gyeonggi Province, South Korea",
		Victim:      "40 y/o man",
		Type:        "robbery",
		Description: "Woman drugs man she met on chat app, steals $87K from his phone",
		URL:         "https://archive.is/e6FKx",
	},
	{
		Date:        "2021-06-14",
		Severity:    4,
		Location:    "Kwun Tong, Hong Kong",
		Victim:      "22 y/o man",
		Type:        "torture",
		Description: "Trader temporarily blinded, HK$2 million stolen",
		URL:         "https://archive.is/6h6UG",
	},
	{
		Date:        "2021-06-24",
		Severity:    4,
		Location:    "Leeuwarden, Netherlands",
		Victim:      "39 y/o man",
		Type:        "torture",
		Description: "3 men posing as service technicians beat password out of Bitcoin owner",
		URL:         "https://archive.md/xviCX",
	},
	{
		Date:        "2021-07-01",
		Severity:    4,
		Location:    "Omsk, Russia",
		Victim:      "Unidentified man",
		Type:        "torture",
		Description: "3 men kidnap and extort over $1M in crypto from victim",
	},
	{
		Date:        "2021-07-01",
		Severity:    2,
		Location:    "Colombia",
		Victim:      "Unidentified man",
		Type:        "robbery",
		Description: "Bitcoin holder drugged and robbed by Tinder date",
		URL:         "https://archive.is/uIMAl",
	},
	{
		Date:        "2021-07-14",
		Severity:    3,
		Location:    "Lagos, Nigeria",
		Victim:      "Morakinyo Peter & Yusuf Dayo",
		Type:        "armed_robbery",
		Description: "Law Enforcement Officers rob 2 men of $50K USD in bitcoin at gunpoint",
		URL:         "https://archive.md/Xdsmc",
	},
	{
		Date:        "2021-07-28",
		Severity:    3,
		Location:    "Tsim Sha Tsui, Hong Kong",
		Victim:      "39 y/o man",
		Type:        "armed_robbery",
		Description: "Trader robbed of HK$3 million at knifepoint",
		URL:         "https://archive.is/CeCA8",
	},
	{
		Date:        "2021-08-01",
		Severity:    2,
		Location:    "Dubai, UAE",
		Victim:      "3 women",
		Type:        "robbery",
		Description: "4 Africans rob three women of $100,000 in a fake Bitcoin deal",
	},
	{
		Date:        "2021-08-08",
		Severity:    5,
		Location:    "Sao Pedro da Aldeia, Brazil",
		Victim:      "Wesley Pessano Santarem",
		Type:        "murder",
		Description: "Crypto Trader's Murder Blamed On Social Media Bragging",
		URL:         "https://archive.is/2kfpq",
	},
	{
		Date:        "2021-08-18",
		Severity:    5,
		Location:    "Plancher-Bas, France",
		Victim:      "Simon Arthuis",
		Type:        "murder",
		Description: "Computer engineering student drugged, tortured, and killed by 5 men for €200,000 in cryptocurrency",
		URL:         "https://archive.md/7mvSY",
	},
	{
		Date:        "2021-09-01",
		Severity:    1,
		Location:    "Abkhazia",
		Victim:      "Unidentified 31 y/o",
		Type:        "theft",
		Description: "Thieves break into garage, steal 20 mining servers worth $10,000",
	},
	{
		Date:        "2021-09-09",
		Severity:    3,
		Location:    "Westmere, New Zealand",
		Victim:      "Mark Geor",
		Type:        "home_invasion",
		Description: "Safe containing $4M of cryptocurrency ripped from house",
		URL:         "https://archive.md/y8m24",
	},
	{
		Date:        "2021-10-01",
		Severity:    3,
		Location:    "Tomsk, Russia",
		Victim:      "Miner",
		Type:        "home_invasion",
		Description: "Armed Robbers attack Miner at his Home, Steal 86 BTC",
		URL:         "https://archive.is/n1IfA",
	},
	{
		Date:        "2021-10-07",
		Severity:    1,
		Location:    "South Bay, California, United States",
		Victim:      "Liquor Store",
		Type:        "theft",
		Description: "Thieves Break Into Liquor Store to Steal Bitcoin ATM",
		URL:         "https://archive.is/1caUw",
	},
	{
		Date:        "2021-10-20",
		Severity:    5,
		Location:    "Abkhazia",
		Victim:      "Astamur Ardzibna",
		Type:        "murder",
		Description: "Man Shot Dead in Hail of Gunfire Over Crypto Mining Rigs",
		URL:         "https://archive.is/zg4Kk",
	},
	{
		Date:        "2021-11-02",
		Severity:    4,
		Location:    "Madrid, Spain",
		Victim:      "Zaryn Dentzel",
		Type:        "torture",
		Description: "Home invaders torture social media founder, take tens of millions of euros in bitcoin",
		URL:         "https://archive.md/f5nIJ",
	},
	{
		Date:        "2021-11-06",
		Severity:    4,
		Location:    "Hong Kong",
		Victim:      "39 y/o trader",
		Type:        "torture",
		Description: "Crypto trader kidnapped by Triad gang, beaten with hammers",
		URL:         "https://archive.is/OnZVR",
	},
	{
		Date:        "2021-11-12",
		Severity:    1,
		Location:    "Barcelona, Spain",
		Victim:      "GBTC Crypto Exchange",
		Type:        "theft",
		Description: "Thieves rip bitcoin ATM from crypto store",
		URL:         "https://archive.md/AsIGX",
	},
	{
		Date:        "2021-11-21",
		Severity:    3,
		Location:    "Los Angeles, California, United States",
		Victim:      "E.Z.",
		Type:        "kidnapping",
		Description: "Attempted robbery & kidnapping at gunpoint by business associate",
		URL:         "https://archive.is/IX5jj",
	},
	{
		Date:        "2021-12-01",
		Severity:    3,
		Location:    "Sukhumi, Abkhazia",
		Victim:      "Unidentified Family",
		Type:        "home_invasion",
		Description: "2 masked men break into home, hold family at gunpoint before escaping with three servers and $2,040 in cash",
	},
	{
		Date:        "2021-12-11",
		Severity:    3,
		Location:    "Bali, Indonesia",
		Victim:      "Camilla Guadagnuolo & Principe Nerini",
		Type:        "armed_robbery",
		Description: "Robbers take $400K in cash & bitcoin at knifepoint",
		URL:         "https://archive.is/KJO7s",
	},
	{
		Date:        "2021-12-15",
		Severity:    3,
		Location:    "Amsterdam, Netherlands",
		Victim:      "Vincent Everts",
		Type:        "home_invasion",
		Description: "Armed home invaders threaten TV personality during livestream",
		URL:         "https://archive.md/tUbAz",
	},
	{
		Date:        "2021-12-27",
		Severity:    4,
		Location:    "Thunder Bay, Ontario, Canada",
		Victim:      "2 unidentified males",
		Type:        "torture",
		Description: "11 Inmates take 2 inmates hostage, force them to transfer cryptocurrency",
		URL:         "https://archive.is/5R0gB",
	},
	{
		Date:        "2022-01-16",
		Severity:    1,
		Location:    "Memphis, Tennessee, United States",
		Victim:      "Gas Station",
		Type:        "theft",
		Description: "Suspects smash gas station with truck, steal Bitcoin ATM",
		URL:         "https://archive.is/Zjfr2",
	},
	{
		Date:        "2022-01-21",
		Severity:    3,
		Location:    "Hoboken, Belgium",
		Victim:      "34 y/o teacher",
		Type:        "home_invasion",
		Description: "3 men invade home, fail to force owner to hand over 3M Euros of BTC",
		URL:         "https://archive.is/LgqrJ",
	},
	{
		Date:        "2022-01-26",
		Severity:    3,
		Location:    "France",
		Victim:      "Owen Simonin",
		Type:        "home_invasion",
		Description: "Fake insurance adjuster attempts armed home invasion, gets pushed and locked out by victim",
		URL:         "https://archive.is/746C7",
	},
	{
		Date:        "2022-02-01",
		Severity:    4,
		Location:    "Missouri, United States",
		Victim:      "John Forsyth",
		Type:        "torture",
		Description: "Crypto founder kidnapped, zip-tied, threatened to be thrown off bridge",
		URL:         "https://archive.is/Qhvjs",
	},
	{
		Date:        "2022-02-02",
		Severity:    4,
		Location:    "Pune, India",
		Victim:      "Vinay Naik",
		Type:        "torture",
		Description: "8 including cop arrested for kidnapping man to extort Bitcoin worth Rs 300 crore ($50 million USD)",
		URL:         "https://archive.is/UJG8J",
	},
	{
		Date:        "2022-02-03",
		Severity:    4,
		Location:    "Surat, India",
		Victim:      "Vinay Jain",
		Type:        "torture",
		Description: "Auto parts businessman brings suitcase full of $260K worth of cash to do an in-person crypto trade, gets beaten and robbed by 8 men",
		URL:         "https://archive.is/hMOJh",
	},
	{
		Date:        "2022-02-03",
		Severity:    4,
		Location:    "Brooklyn, New York, United States",
		Victim:      "Ilya Basin",
		Type:        "torture",
		Description: "Crypto consultant hog-tied, beaten during home invasion",
		URL:         "https://archive.is/DEA2C",
	},
	{
		Date:        "2022-03-01",
		Severity:    3,
		Location:    "Dubai, UAE",
		Victim:      "bitcoin trader",
		Type:        "home_invasion",
		Description: "4 men invade home, tie up man, steal $450K from safe",
		URL:         "https://archive.is/Ri5N9",
	},
	{
		Date:        "2022-03-02",
		Severity:    3,
		Location:    "Miami, Florida, United States",
		Victim:      "Unidentified man",
		Type:        "armed_robbery",
		Description: "Businessman ambushed by armed robber, has $1M watch & crypto wallet taken",
		URL:         "https://archive.is/tyzQa",
	},
	{
		Date:        "2022-03-04",
		Severity:    2,
		Location:    "Pune, India",
		Victim:      "Electronics Dealer",
		Type:        "extortion",
		Description: "Woman cop suspended for bid to extort crypto from trader",
		URL:         "https://archive.is/wPxv4",
	},
	{
		Date:        "2022-03-16",
		Severity:    4,
		Location:    "New York, New York, United States",
		Victim:      "Pierrick Jamaux",
		Type:        "torture",
		Description: "Crypto expert shot 5 times by robber seeking Richard Mille watch",
		URL:         "https://archive.is/LRGHO",
	},
	{
		Date:        "2022-03-30",
		Severity:    3,
		Location:    "Los Angeles, California, United States",
		Victim:      "E.Z.",
		Type:        "home_invasion",
		Description: "Attempted home invasion by 3 armed men; victim fired gun at attackers, who fled",
		URL:         "https://archive.is/IX5jj",
	},
	{
		Date:        "2022-04-01",
		Severity:    3,
		Location:    "Dubai, UAE",
		Victim:      "Unidentified trader",
		Type:        "armed_robbery",
		Description: "9 robbers invaded the office of a bitcoin trader and took over $1,000,000 in cash",
		URL:         "https://archive.is/MkVof",
	},
	{
		Date:        "2022-04-21",
		Severity:    4,
		Location:    "Norrköping, Sweden",
		Victim:      "Unidentified couple",
		Type:        "torture",
		Description: "Couple tied up and beaten, forced to transfer cryptocurrency",
		URL:         "https://archive.is/waBom",
	},
	{
		Date:        "2022-05-01",
		Severity:    2,
		Location:    "London, England",
		Victim:      "4 victims",
		Type:        "robbery",
		Description: "Multiple incidents of crypto muggings around London",
		URL:         "https://archive.is/rlae2",
	},
	{
		Date:        "2022-05-01",
		Severity:    2,
		Location:    "Dubai, UAE",
		Victim:      "Unidentified man",
		Type:        "robbery",
		Description: "Crypto expert assaulted & robbed by investors for losing money",
		URL:         "https://archive.is/Kvu77",
	},
	{
		Date:        "2022-05-20",
		Severity:    3,
		Location:    "Klang, Malaysia",
		Victim:      "Factory Owner",
		Type:        "armed_robbery",
		Description: "12 men rob aluminum factory, steal 180 Bitcoin ASICs",
		URL:         "https://archive.is/JjfwB",
	},
	{
		Date:        "2022-06-01",
		Severity:    4,
		Location:    "Osaka, Japan",
		Victim:      "Undisclosed",
		Type:        "torture",
		Description: "Son of Mitsubishi Electric CEO + 7 men kidnap, torture gym member for crypto assets",
		URL:         "https://archive.is/UWS2L",
	},
	{
		Date:        "2022-07-01",
		Severity:    3,
		Location:    "Dubai, UAE",
		Victim:      "Asian Investor",
		Type:        "home_invasion",
		Description: "Man suffers home invasion, loses ~$50,000 after attempting a face-to-face cash trade to buy bitcoin",
		URL:         "https://archive.is/OLid3",
	},
	{
		Date:        "2022-07-01",
		Severity:    3,
		Location:    "Kuchino, Russia",
		Victim:      "Vkusvill Supermarket",
		Type:        "armed_robbery",
		Description: "4 armed mask men rob warehouse, steal 100 GPUs",
		URL:         "https://archive.is/vg0Lo",
	},
	{
		Date:        "2022-08-06",
		Severity:    3,
		Location:    "Manerba, Italy",
		Victim:      "30 y/o broker",
		Type:        "armed_robbery",
		Description: "3 men follow a man home, hold him at knifepoint for BTC",
		URL:         "https://archive.is/qB84G",
	},
	{
		Date:        "2022-08-07",
		Severity:    4,
		Location:    "Vrindavan Yojana, India",
		Victim:      "Arjun Bhargav",
		Type:        "torture",
		Description: "3 men trick, abduct, torture realtor for 8 BTC",
		URL:         "https://archive.is/UlCSo",
	},
	{
		Date:        "2022-09-01",
		Severity:    4,
		Location:    "Richmond, British Columbia, Canada",
		Victim:      "Middle Aged Couple",
		Type:        "torture",
		Description: "Multiple suspects posing as police invade home, tie up residents, steal $10M in crypto",
		URL:         "https://archive.is/WtZ5A",
	},
	{
		Date:        "2022-09-06",
		Severity:    3,
		Location:    "Lincolnshire, England",
		Victim:      "19 y/o hacker",
		Type:        "home_invasion",
		Description: "3 men, 1 posing as a cop, arrested while attempting home invasion",
		URL:         "https://archive.is/K58cR",
	},
	{
		Date:        "2022-09-12",
		Severity:    3,
		Location:    "Winnipeg, Canada",
		Victim:      "19 y/o man",
		Type:        "armed_robbery",
		Description: "Man held at gunpoint, assaulted and tied up during Bitcoin trade",
		URL:         "https://archive.is/psytU",
	},
	{
		Date:        "2022-09-12",
		Severity:    3,
		Location:    "Delray Beach, Florida, United States",
		Victim:      "Unidentified couple",
		Type:        "home_invasion",
		Description: "Armed gang invades home, takes jewelry, electronics, cash. Tried but failed to drain Gemini account",
		URL:         "https://archive.is/34qpX",
	},
	{
		Date:        "2022-09-15",
		Severity:    2,
		Location:    "Koh Samui, Thailand",
		Victim:      "Russian Couple",
		Type:        "robbery",
		Description: "Russian couple extorted by gang of foreign men at coffee shop",
		URL:         "https://archive.is/VmHZx",
	},
	{
		Date:        "2022-09-15",
		Severity:    4,
		Location:    "Homestead, Florida, United States",
		Victim:      "Unidentified young man",
		Type:        "torture",
		Description: "Armed gang invades home, takes jewelry, electronics. Kidnapped & tortured victim, failed to find his bitcoin",
		URL:         "https://archive.is/34qpX",
	},
	{
		Date:        "2022-11-01",
		Severity:    4,
		Location:    "Barrie, Ontario, Canada",
		Victim:      "Female A.T.",
		Type:        "torture",
		Description: "A woman was kidnapped, tied to a chair, stripped naked, hit in the legs with a hammer, and burned while attackers demanded $1 million in bitcoin",
		URL:         "https://archive.is/Krld4",
	},
	{
		Date:        "2022-12-01",
		Severity:    4,
		Location:    "Toronto, Ontario, Canada",
		Victim:      "Aiden Pleterski",
		Type:        "torture",
		Description: "Crypto king abducted, tortured, and beaten for days as his kidnappers sought millions in ransom",
	},
	{
		Date:        "2022-12-01",
		Severity:    3,
		Location:    "Moscow, Russia",
		Victim:      "Russian Businessman",
		Type:        "kidnapping",
		Description: "Man kidnapped from his Bentley by 4 men, forced to give access to bitcoin wallet",
		URL:         "https://archive.is/zC9Tf",
	},
	{
		Date:        "2022-12-03",
		Severity:    2,
		Location:    "Lelystad, Netherlands",
		Victim:      "Unidentified man",
		Type:        "robbery",
		Description: "Man responds to ad to sell his bitcoin, is attacked by several men & forced to transfer 30K EUR worth of BTC & ETH",
		URL:         "https://archive.is/JNkaq",
	},
	{
		Date:        "2022-12-11",
		Severity:    3,
		Location:    "Phuket, Thailand",
		Victim:      "2 Russians",
		Type:        "kidnapping",
		Description: "2 men who work on a cryptocurrency were kidnapped and robbed",
		URL:         "https://archive.vn/el9Sc",
	},
	{
		Date:        "2022-12-12",
		Severity:    3,
		Location:    "Philippines",
		Victim:      "Chinese businessman",
		Type:        "kidnapping",
		Description: "Chinese businessman kidnapped and held for six days in the Philippines",
		URL:         "https://archive.vn/zSEIQ",
	},
	{
		Date:        "2022-12-22",
		Severity:    4,
		Location:    "Little Elm, Texas, United States",
		Victim:      "Unidentified man",
		Type:        "torture",
		Description: "Armed gang invades home, torture victims for 3 hours, take jewelry, fail to find hardware wallet with $1.4m",
		URL:         "https://archive.is/34qpX",
	},
	{
		Date:        "2023-01-05",
		Severity:    2,
		Location:    "Salford, England",
		Victim:      "Karl Johnson",
		Type:        "extortion",
		Description: "Man knocks on door, threatens to assault victim, leaves after he sends some cryptocurrency",
		URL:         "https://archive.is/GTCVg",
	},
	{
		Date:        "2023-01-14",
		Severity:    3,
		Location:    "Barcelona, Spain",
		Victim:      "Crypto Company",
		Type:        "armed_robbery",
		Description: "5 men stormed into a company's office armed with tasers and zip ties",
		URL:         "https://archive.is/tAU6I",
	},
	{
		Date:        "2023-01-25",
		Severity:    3,
		Location:    "Salford, England",
		Victim:      "Karl Johnson",
		Type:        "armed_robbery",
		Description: "2 men knock on door, threaten victim with knife, leave after he sends cryptocurrency",
		URL:         "https://archive.is/GTCVg",
	},
	{
		Date:        "2023-02-01",
		Severity:    3,
		Location:    "Melbourne, Australia",
		Victim:      "Saudi Royal",
		Type:        "kidnapping",
		Description: "TikTok influencer lures Saudi royal to her home where he was imprisoned until he handed over $40K in BTC",
		URL:         "https://archive.is/K2OW1",
	},
	{
		Date:        "2023-02-25",
		Severity:    4,
		Location:    "Bali, Indonesia",
		Victim:      "Yuri Boytsov",
		Type:        "torture",
		Description: "4 men invade crypto blogger's home, beat him until he transfers $284,000 in BTC",
		URL:         "https://archive.is/2R05l",
	},
	{
		Date:        "2023-02-27",
		Severity:    2,
		Location:    "Medellin, Colombia",
		Victim:      "German man",
		Type:        "robbery",
		Description: "20 year old Venezuelan woman drugs and robs man of 1 BTC",
		URL:         "https://archive.is/ZhIn5",
	},
	{
		Date:        "2023-03-09",
		Severity:    4,
		Location:    "Sydney, Australia",
		Victim:      "Peter Vuong",
		Type:        "torture",
		Description: "Gang kidnaps boyfriend of crypto trader's relative, demands $5M ransom while torturing him for 6 days",
		URL:         "https://archive.is/YommD",
	},
	{
		Date:        "2023-03-20",
		Severity:    2,
		Location:    "Noida, India",
		Victim:      "Virendra Malik",
		Type:        "robbery",
		Description: "Couple stages robbery to steal bitcoin from their friend, but he doesn't comply",
		URL:         "https://archive.is/iJ7td",
	},
	{
		Date:        "2023-03-29",
		Severity:    5,
		Location:    "Seoul, South Korea",
		Victim:      "48 y/o woman",
		Type:        "murder",
		Description: "4 men kidnap woman, steal crypto, murder her",
		URL:         "https://archive.is/c2HcG",
	},
	{
		Date:        "2023-04-01",
		Severity:    4,
		Location:    "Dubai, UAE",
		Victim:      "Unidentified Woman",
		Type:        "torture",
		Description: "Driver & 3 friends lured an investor into a fake deal, robbed, electrocuted, stripped naked, and took blackmail videos",
		URL:         "https://archive.is/geUM5",
	},
	{
		Date:        "2023-04-12",
		Severity:    3,
		Location:    "Durham, North Carolina, United States",
		Victim:      "76 y/o couple",
		Type:        "home_invasion",
		Description: "2 men posing as construction workers invade home, force transfer of $250K in crypto",
		URL:         "https://archive.is/Vp5J6",
	},
	{
		Date:        "2023-05-03",
		Severity:    3,
		Location:    "Benalmádena, Spain",
		Victim:      "Unidentified man",
		Type:        "kidnapping",
		Description: "3 men kidnap crypto businessman, demand €1 million ransom. He was rescued by police",
		URL:         "https://archive.is/AJHuG",
	},
	{
		Date:        "2023-05-26",
		Severity:    1,
		Location:    "Houston, Texas, United States",
		Victim:      "Smoke Shop",
		Type:        "theft",
		Description: "7 men arrested after ramming store with stolen truck in failed attempt to steal Bitcoin ATM",
		URL:         "https://archive.is/j7PbE",
	},
	{
		Date:        "2023-06-01",
		Severity:    3,
		Location:    "Tel Aviv, Israel",
		Victim:      "Crypto Entrepreneur",
		Type:        "armed_robbery",
		Description: "Crypto entrepreneur robbed at gunpoint in his home in Tel Aviv",
		URL:         "https://archive.is/mgD0B",
	},
	{
		Date:        "2023-07-16",
		Severity:    3,
		Location:    "Queens, New York, United States",
		Victim:      "Unknown Couple",
		Type:        "home_invasion",
		Description: "Fake FBI agents in Porsche tase and tie up couple, steal Mercedes, $40K in cash, crypto",
		URL:         "https://archive.is/iSRCc",
	},
	{
		Date:        "2023-09-03",
		Severity:    3,
		Location:    "Phuket, Thailand",
		Victim:      "Italian man",
		Type:        "armed_robbery",
		Description: "Russian MMA fighter & twin brother rob man of watches, seek Ledger wallet",
		URL:         "https://archive.is/oSGRU",
	},
	{
		Date:        "2023-10-01",
		Severity:    4,
		Location:    "Cardishead, England",
		Victim:      "Karl Johnson",
		Type:        "torture",
		Description: "Victim dragged into a flat, tied up, assaulted, locked in a cupboard all night until they received cryptocurrency",
		URL:         "https://archive.is/GTCVg",
	},
	{
		Date:        "2023-10-15",
		Severity:    3,
		Location:    "Salford, England",
		Victim:      "Karl Johnson",
		Type:        "kidnapping",
		Description: "Days after previous attack, victim was kidnapped, had bag placed over head, released after sending cryptocurrency",
		URL:         "https://archive.is/GTCVg",
	},
	{
		Date:        "2023-10-30",
		Severity:    3,
		Location:    "Tbilisi, Georgia",
		Victim:      "Crypto Exchange",
		Type:        "armed_robbery",
		Description: "6 men rob exchange office, take $900K USD in crypto",
		URL:         "https://archive.is/zHpPv",
	},
	{
		Date:        "2023-11-06",
		Severity:    4,
		Location:    "Rönninge, Sweden",
		Victim:      "Middle-aged couple",
		Type:        "torture",
		Description: "Couple tied up, beaten, and threatened with their own kitchen knives",
		URL:         "https://archive.is/ODWxI",
	},
	{
		Date:        "2023-11-10",
		Severity:    4,
		Location:    "Montenegro",
		Victim:      "Binance Client",
		Type:        "torture",
		Description: "Executives lured into fake business trip, kidnapped, forced to empty wallets of $12M USDT",
		URL:         "https://archive.is/3jxou",
	},
	{
		Date:        "2023-11-10",
		Severity:    4,
		Location:    "Portland, Oregon, United States",
		Victim:      "21 y/o man",
		Type:        "torture",
		Description: "4 men fly from FL to OR, kidnap target from apartment, torture him until he revealed seed phrase",
		URL:         "https://archive.is/pFhaX",
	},
	{
		Date:        "2023-11-30",
		Severity:    3,
		Location:    "Salford, England",
		Victim:      "Karl Johnson",
		Type:        "kidnapping",
		Description: "Victim was kidnapped from a friend's house, had bag placed over head, rescued by police after anonymous tip sent",
		URL:         "https://archive.is/GTCVg",
	},
	{
		Date:        "2023-12-25",
		Severity:    3,
		Location:    "Izhevsk, Russia",
		Victim:      "23 y/o miner",
		Type:        "kidnapping",
		Description: "Miner kidnapped from home, ransomed, rescued by police",
		URL:         "https://archive.is/XIPFP",
	},
	{
		Date:        "2024-01-16",
		Severity:    4,
		Location:    "Cluj, Romania",
		Victim:      "42 y/o man",
		Type:        "torture",
		Description: "Restaurant owner kidnapped, doused in diesel, force fed alcohol, has finger cut off, until he transferred $200K USD in crypto",
		URL:         "https://archive.is/eqj4y",
	},
	{
		Date:        "2024-01-31",
		Severity:    3,
		Location:    "Phuket, Thailand",
		Victim:      "Belarusian couple (23 y/o man)",
		Type:        "kidnapping",
		Description: "5 Russians arrested in crypto abduction case (~USD 801,200)",
		URL:         "https://archive.is/IcEmQ",
	},
	{
		Date:        "2024-03-01",
		Severity:    2,
		Location:    "Scottsdale, Arizona, United States",
		Victim:      "Uber Riders",
		Type:        "robbery",
		Description: "Fake Uber driver stole $200K+ in crypto from customers' Coinbase accounts by taking their phones",
		URL:         "https://archive.is/MfJer",
	},
	{
		Date:        "2024-03-10",
		Severity:    3,
		Location:    "Montreal, Quebec, Canada",
		Victim:      "Young Couple",
		Type:        "kidnapping",
		Description: "Gang of 4 kidnaps couple and robs them of $25,000 in cryptocurrency",
		URL:         "https://archive.is/tZB6N",
	},
	{
		Date:        "2024-03-15",
		Severity:    2,
		Location:    "Samui Island, Thailand",
		Victim:      "___ Yevgini",
		Type:        "robbery",
		Description: "Gang of 6 Russians robs Russian man and wife at coffee shop for 1.8 million baht in BTC",
		URL:         "https://archive.is/EnzIt",
	},
	{
		Date:        "2024-04-18",
		Severity:    3,
		Location:    "Lianhe Zaobao, Singapore",
		Victim:      "11 Traders",
		Type:        "armed_robbery",
		Description: "4 men rob suspected Chinese crypto gambling ring of $3M USD",
		URL:         "https://archive.is/ZW6GW",
	},
	{
		Date:        "2024-04-27",
		Severity:    3,
		Location:    "Port Moody, British Columbia, Canada",
		Victim:      "Undisclosed",
		Type:        "home_invasion",
		Description: "Violent home invasion, suspect arrested at airport and eventually sentenced to 7 years",
		URL:         "https://archive.is/UOFBy",
	},
	{
		Date:        "2024-05-05",
		Severity:    2,
		Location:    "London, England",
		Victim:      "Quentin Cepeljac",
		Type:        "robbery",
		Description: "Belgian barber brags about being successful crypto dealer to impress woman. She invites him to her luxury flat, which ends up being a wrench attack trap. Turned out he only had £6.71 in crypto",
		URL:         "https://archive.is/EBmqW",
	},
	{
		Date:        "2024-06-17",
		Severity:    3,
		Location:    "London, England",
		Victim:      "Ramesh Nair",
		Type:        "home_invasion",
		Description: "3 men armed with machetes invade home, force owner to transfer 1,000+ ETH",
		URL:         "https://archive.is/u3sUN",
	},
	{
		Date:        "2024-07-03",
		Severity:    3,
		Location:    "Tseung Kwan, Hong Kong",
		Victim:      "3 y/o boy",
		Type:        "kidnapping",
		Description: "2 women abduct toddler from mall, demand $660,000 USDT ransom",
		URL:         "https://archive.is/gMmvr",
	},
	{
		Date:        "2024-07-10",
		Severity:    3,
		Location:    "Angers, France",
		Victim:      "Undisclosed Man",
		Type:        "home_invasion",
		Description: "2 men invade home, threaten victim with knife & crowbar, demand 10,000 EUR",
		URL:         "https://archive.is/bVBGi",
	},
	{
		Date:        "2024-07-11",
		Severity:    3,
		Location:    "Cyberjaya, Malaysia",
		Victim:      "Chinese National",
		Type:        "kidnapping",
		Description: "18 people kidnap 2 victims, hold them for $1.2M ransom, get in shootout with police",
		URL:         "https://archive.is/foteq",
	},
	{
		Date:        "2024-07-12",
		Severity:    4,
		Location:    "Bangkok, Thailand",
		Victim:      "British Crypto Trader",
		Type:        "torture",
		Description: "5 people tie up trader, assault, and rob him",
		URL:         "https://archive.is/gDRlQ",
	},
	{
		Date:        "2024-07-22",
		Severity:    3,
		Location:    "Bavdhan, India",
		Victim:      "26 y/o Trading Coach",
		Type:        "kidnapping",
		Description: "Gang of 5 kidnaps trader and robs him at knifepoint of $18,000 in USDT",
		URL:         "https://archive.is/0WqWe",
	},
	{
		Date:        "2024-07-28",
		Severity:    5,
		Location:    "Kyiv, Ukraine",
		Victim:      "29 y/o Moroccan man",
		Type:        "murder",
		Description: "4 men kidnap foreigner, rob, & murder him for 3 BTC",
		URL:         "https://archive.is/GbuTI",
	},
	{
		Date:        "2024-07-29",
		Severity:    3,
		Location:    "Tallinn, Estonia",
		Victim:      "Tim Heath",
		Type:        "home_invasion",
		Description: "Crypto billionaire attacked at rental home by men posing as painters, successfully fights them off and prevents kidnapping",
		URL:         "https://archive.is/b26vs",
	},
	{
		Date:        "2024-08-07",
		Severity:    3,
		Location:    "Puntarenas, Costa Rica",
		Victim:      "11 Israelis",
		Type:        "armed_robbery",
		Description: "8 men, possibly police, overpower security guard, rob 11 tourists of 10+ BTC",
		URL:         "https://archive.is/ouViV",
	},
	{
		Date:        "2024-08-04",
		Severity:    3,
		Location:    "Bangkok, Thailand",
		Victim:      "Ke Jibao",
		Type:        "home_invasion",
		Description: "Gang of 4 Chinese nationals sneak into gated estate, commit armed home invasion, rob $2M USD of cryptocurrency",
		URL:         "https://archive.is/5LxCt",
	},
	{
		Date:        "2024-08-15",
		Severity:    4,
		Location:    "Verdun, Quebec, Canada",
		Victim:      "Undisclosed",
		Type:        "torture",
		Description: "3 men invade home of crypto entrepreneur, torture him for hours until he transfers $15K",
		URL:         "https://archive.is/xTNpu",
	},
	{
		Date:        "2024-08-25",
		Severity:    3,
		Location:    "Danbury, Connecticut, United States",
		Victim:      "Radhika & Suchil Chetal",
		Type:        "kidnapping",
		Description: "Parents of $243M heist thieves get carjacked & kidnapped in botched ransom plot",
		URL:         "https://archive.is/4qSqM",
	},
	{
		Date:        "2024-08-29",
		Severity:    2,
		Location:    "Hougang, Singapore",
		Victim:      "19 y/o",
		Type:        "robbery",
		Description: "Man seeks p2p trade of cash for USDT, punched by attackers, successfully escapes",
		URL:         "https://archive.is/01kOx",
	},
	{
		Date:        "2024-09-13",
		Severity:    5,
		Location:    "Villa Carlos Paz, Argentina",
		Victim:      "Gabriel Di Noto",
		Type:        "murder",
		Description: "Accountant / crypto trader met a woman on Tinder, likely drugged, beaten by several men, forced to transfer funds, then murdered",
		URL:         "https://archive.is/fwQC9",
	},
	{
		Date:        "2024-10-01",
		Severity:    3,
		Location:    "Sofia, Bulgaria",
		Victim:      "35 y/o man",
		Type:        "kidnapping",
		Description: "2 men posed as police, kidnapped victim, held a gun at his head for an hour and demanded 14 bitcoin from him. They failed to get any BTC",
		URL:         "https://web.archive.org/web/20241225224323/https://btvnovinite.bg/bulgaria/otvlichane-ot-mnimi-policai-za-14-bitkojna-razkaz-na-sluzhitel-na-sdvr-samo-pred-btv.html",
	},
	{
		Date:        "2024-10-27",
		Severity:    3,
		Location:    "Chicago, Illinois, United States",
		Victim:      "3 Family Members and a Nanny",
		Type:        "kidnapping",
		Description: "6 men accused of kidnapping family from Chicago townhouse and forcing a transfer of $15 million in cryptocurrency",
		URL:         "https://archive.is/TFbsx",
	},
	{
		Date:        "2024-11-01",
		Severity:    3,
		Location:    "Las Vegas, Nevada, United States",
		Victim:      "Unidentified man",
		Type:        "kidnapping",
		Description: "3 teens kidnap man who hosted a crypto event. Drove him out to the desert, forced him to transfer $4 million at gunpoint",
		URL:         "https://archive.is/suvfl",
	},
	{
		Date:        "2024-11-04",
		Severity:    1,
		Location:    "Victoriaville, Québec, Canada",
		Victim:      "Forum Moderator",
		Type:        "planned",
		Description: "Attempted kidnapping by 4 individuals who wanted to torture him to steal forum mod's bitcoins",
	},
	{
		Date:        "2024-11-06",
		Severity:    3,
		Location:    "Toronto, Ontario, Canada",
		Victim:      "Dean Skurka",
		Type:        "kidnapping",
		Description: "WonderFi CEO kidnapped during rush hour, held until $1M ransom paid",
		URL:         "https://archive.is/st5SP",
	},
	{
		Date:        "2024-11-08",
		Severity:    3,
		Location:    "Phuket, Thailand",
		Victim:      "Viacheslav Leibov",
		Type:        "armed_robbery",
		Description: "Tourist robbed by armed gang in friend's hotel room, forced to transfer $250K USDT",
		URL:         "https://archive.is/wRbOB",
	},
	{
		Date:        "2024-11-20",
		Severity:    1,
		Location:    "United States",
		Victim:      "Gen Z Quant kid",
		Type:        "theft",
		Description: "13 year old's dog stolen after he rug pulled a token on pump.fun",
		URL:         "https://archive.is/tqqpY",
	},
	{
		Date:        "2024-11-22",
		Severity:    3,
		Location:    "Las Vegas, Nevada, United States",
		Victim:      "Undisclosed Man",
		Type:        "kidnapping",
		Description: "Sex worker accused of kidnapping, stealing $300K in crypto from man she met at nightclub",
		URL:         "https://archive.is/jXCz4",
	},
	{
		Date:        "2024-12-01",
		Severity:    2,
		Location:    "Chengdu, China",
		Victim:      "Wang Shu",
		Type:        "robbery",
		Description: "Software engineer lured by X account promising sex, ambushed at hotel by a gang that robbed him of 6 BTC",
		URL:         "https://archive.is/moqsn",
	},
	{
		Date:        "2024-12-03",
		Severity:    1,
		Location:    "Melbourne, Australia",
		Victim:      "Coinflip ATM",
		Type:        "theft",
		Description: "Crypto ATM stolen from shopping center",
		URL:         "https://archive.is/l7rYI",
	},
	{
		Date:        "2024-12-15",
		Severity:    4,
		Location:    "Ungasan, Bali, Indonesia",
		Victim:      "Igor Lermakov",
		Type:        "torture",
		Description: "A Russian gang of 4 men ambushed a Ukrainian on the road in Bali. The victim was kidnapped and beaten until he handed over $200,000 in cryptocurrency",
		URL:         "https://archive.is/gIh5V",
	},
	{
		Date:        "2024-12-19",
		Severity:    4,
		Location:    "Laboma Beach, Ghana",
		Victim:      "Benjamin Appiah Boateng",
		Type:        "torture",
		Description: "Businessman lured to meeting, handcuffed, beaten, electrocuted for 15 hours before being rescued by police",
		URL:         "https://archive.is/7xNoz",
	},
	{
		Date:        "2024-12-24",
		Severity:    3,
		Location:    "Brussels, Belgium",
		Victim:      "Stéphane Winkel's Wife",
		Type:        "kidnapping",
		Description: "Wife of crypto influencer who bragged about wealth was kidnapped by 3 men, police chase led to car crash",
		URL:         "https://archive.is/6PkiL",
	},
	{
		Date:        "2024-12-24",
		Severity:    2,
		Location:    "Limassol, Cyprus",
		Victim:      "Undisclosed Man",
		Type:        "robbery",
		Description: "Christmas Eve Limassol heist as man gets away with 100 thousand Euros in cash",
		URL:         "https://archive.is/WgL08",
	},
	{
		Date:        "2024-12-25",
		Severity:    3,
		Location:    "Karachi, Pakistan",
		Victim:      "Arsalan Malik",
		Type:        "kidnapping",
		Description: "Crypto trader in Karachi, Pakistan abducted by 5 men in a police van and forced to transfer $340,000 at gunpoint",
		URL:         "https://archive.is/vUHzn",
	},
	{
		Date:        "2024-12-28",
		Severity:    3,
		Location:    "Los Angeles, California, United States",
		Victim:      "Undisclosed",
		Type:        "home_invasion",
		Description: "LAPD officer commits home invasion, robs $200,000 in cryptocurrency from 2 victims",
		URL:         "https://archive.is/2vbBw",
	},
	{
		Date:        "2025-01-01",
		Severity:    3,
		Location:    "Saint-Genis-Pouilly, France",
		Victim:      "Influencer's father",
		Type:        "kidnapping",
		Description: "Crypto influencer's father was kidnapped on New Year's Eve",
		URL:         "https://archive.is/ATZ7u",
	},
	{
		Date:        "2025-01-05",
		Severity:    3,
		Location:    "Phuket, Thailand",
		Victim:      "Russian Man",
		Type:        "robbery",
		Description: "Man attacked and tied up in hotel, refuses to give up phone password, is knocked out and has cash stolen",
		URL:         "https://archive.is/eI12f",
	},
	{
		Date:        "2025-01-13",
		Severity:    1,
		Location:    "Miami, Florida, United States",
		Victim:      "Miami Jeweler",
		Type:        "planned",
		Description: "Gang of 4 men arrested by FBI on their way to rob jeweler of $2M",
		URL:         "https://archive.is/Zn7dK",
	},
	{
		Date:        "2025-01-14",
		Severity:    3,
		Location:    "Pattaya, Thailand",
		Victim:      "Masis Erkol",
		Type:        "kidnapping",
		Description: "Man tied up in condo, forced to transfer $290,000 in cryptocurrency",
		URL:         "https://archive.is/ktr2P",
	},
	{
		Date:        "2025-01-16",
		Severity:    3,
		Location:    "Makati, Philippines",
		Victim:      "Taehwa Kim",
		Type:        "kidnapping",
		Description: "Korean bitcoin trader kidnapped, held hostage for 3 days. No crypto taken",
		URL:         "https://archive.is/FbOdh",
	},
	{
		Date:        "2025-01-20",
		Severity:    2,
		Location:    "Jeju, South Korea",
		Victim:      "Chinese National",
		Type:        "robbery",
		Description: "Gang of 6 people meet OTC trader in luxury hotel, assault and rob him of $580K in cash and crypto",
		URL:         "https://archive.is/16EQW",
	},
	{
		Date:        "2025-01-21",
		Severity:    4,
		Location:    "Vierzon, France",
		Victim:      "David Balland & Wife",
		Type:        "torture",
		Description: "Ledger co-founder & wife kidnapped and ransomed, his finger was severed, rescued by GIGN. Ransom was partially paid but later seized via Tether",
		URL:         "https://archive.is/J4nQB",
	},
	{
		Date:        "2025-01-24",
		Severity:    3,
		Location:    "Troyes, France",
		Victim:      "30 y/o man",
		Type:        "kidnapping",
		Description: "Crypto miner was lured to a meeting, taken hostage, 20K EUR ransom demanded. Police rescued him & arrested 4 suspects",
		URL:         "https://archive.is/ZGgxx",
	},
	{
		Date:        "2025-01-30",
		Severity:    3,
		Location:    "Campo Limpo Paulista, Brazil",
		Victim:      "Brazilian Family",
		Type:        "home_invasion",
		Description: "Criminals invade home, hold family hostage, force transfer of $16,000 USD in cryptocurrencies",
		URL:         "https://archive.is/gCRLe",
	},
	{
		Date:        "2025-02-01",
		Severity:    2,
		Location:    "Okota, Lagos",
		Victim:      "Unidentified man",
		Type:        "robbery",
		Description: "Woman conspires with brother & gang to rob her boyfriend of 3 iPhones and $10K USD of bitcoin",
		URL:         "https://archive.is/snVgV",
	},
	{
		Date:        "2025-02-02",
		Severity:    3,
		Location:    "Costa del Sol, Spain",
		Victim:      "34 y/o man",
		Type:        "kidnapping",
		Description: "Crypto trader randomly met men at a hotel and told them what he did for a living. They later invited him over, took him hostage, demanded 30K EUR ransom",
		URL:         "https://archive.is/bX3sr",
	},
	{
		Date:        "2025-02-08",
		Severity:    3,
		Location:    "Paris, France",
		Victim:      "20 y/o man",
		Type:        "kidnapping",
		Description: "Crypto investor lured to meeting by woman, abducted by 3 men who demand 40K EUR",
		URL:         "https://archive.is/jH9pD",
	},
	{
		Date:        "2025-02-24",
		Severity:    4,
		Location:    "Jeju City, South Korea",
		Victim:      "30 y/o Chinese Man",
		Type:        "torture",
		Description: "4 Chinese suspects stab man lured to perform a trade in hotel room, steal 85 million won",
		URL:         "https://archive.is/IZwbJ",
	},
	{
		Date:        "2025-02-28",
		Severity:    3,
		Location:    "Ho Chi Minh City, Vietnam",
		Victim:      "Chinese Man",
		Type:        "kidnapping",
		Description: "Chinese gang kidnaps victim, extorts 600,000 USDT, are quickly apprehended by police",
		URL:         "https://archive.is/qIgny",
	},
	{
		Date:        "2025-03-01",
		Severity:    4,
		Location:    "Sweden",
		Victim:      "30 y/o man",
		Type:        "torture",
		Description: "Victim kidnapped by gang who took him into the woods, kicked and punched him, poured gasoline over him, threatened to set him on fire, placed pliers to his hand, and threatened to cut off his fingers",
		URL:         "https://archive.is/JGtEj",
	},
	{
		Date:        "2025-03-02",
		Severity:    3,
		Location:    "Houston, Texas, United States",
		Victim:      "Kaitlyn Siragusa",
		Type:        "home_invasion",
		Description: "Popular Streamer Amouranth posts screenshot of $20M BTC wallet, becomes victim of armed home invasion. Her husband defended her by shooting an attacker",
		URL:         "https://archive.is/Yn8mp",
	},
	{
		Date:        "2025-03-13",
		Severity:    3,
		Location:    "Lai Chi Kok, Hong Kong",
		Victim:      "41 y/o Wong",
		Type:        "robbery",
		Description: "Man sells HK $318,000 worth of cryptocurrency, is then beaten with a stick and robbed of the cash he received",
		URL:         "https://archive.is/bhCYH",
	},
	{
		Date:        "2025-03-21",
		Severity:    3,
		Location:    "Imbiribeira, Brazil",
		Victim:      "Retired Teacher",
		Type:        "kidnapping",
		Description: "Crypto manager surveilled, mother kidnapped, ransomed for 5 BTC. 4 people were later arrested",
		URL:         "https://archive.is/1nyeP",
	},
	{
		Date:        "2025-03-23",
		Severity:    4,
		Location:    "Ipiranga, Brazil",
		Victim:      "Spanish Businessman",
		Type:        "torture",
		Description: "Man kidnapped by 2 fake police officers, held for a week and drugged, demanded $50M, escaped on his own",
		URL:         "https://archive.is/WnpO6",
	},
	{
		Date:        "2025-03-27",
		Severity:    3,
		Location:    "Tsim Sha Tsui, Hong Kong",
		Victim:      "27 y/o Turkish man",
		Type:        "armed_robbery",
		Description: "Man brought a bag containing €5 million in cash to trade for crypto when he was attacked by two assailants, one of whom slashed him with a knife. He fought them off",
		URL:         "https://archive.is/d6Fi1",
	},
	{
		Date:        "2025-03-29",
		Severity:    5,
		Location:    "Mecauayan, Bulacan, Philippines",
		Victim:      "Anson Que",
		Type:        "murder",
		Description: "Businessman lured by woman to house & taken hostage. Attackers demanded $20M in cryptocurrency & received over $3M in multiple tranches. They killed the victim anyway",
		URL:         "https://archive.is/PHT9w",
	},
	{
		Date:        "2025-04-13",
		Severity:    3,
		Location:    "PIB Colony, Pakistan",
		Victim:      "Ismail",
		Type:        "kidnapping",
		Description: "Gang poses as police, kidnaps victim, forces him to hand over Bitcoin",
		URL:         "https://archive.is/fpCPj",
	},
	{
		Date:        "2025-05-01",
		Severity:    4,
		Location:    "Paris, France",
		Victim:      "Undisclosed man",
		Type:        "torture",
		Description: "Father of crypto millionaire abducted in broad daylight, 5M EUR ransom demanded, finger severed before being rescued by police",
		URL:         "https://archive.is/AC9zg",
	},
	{
		Date:        "2025-05-06",
		Severity:    4,
		Location:    "New York, New York, United States",
		Victim:      "28 y/o Italian man",
		Type:        "torture",
		Description: "Crypto entrepreneur tortures man for weeks with a chainsaw & taser in a luxury $30K+ per month apartment. Victim escaped w/o giving up funds",
		URL:         "https://archive.is/bfLQt",
	},
	{
		Date:        "2025-05-09",
		Severity:    2,
		Location:    "London, England",
		Victim:      "Jacob Irwin-Cline",
		Type:        "robbery",
		Description: "American tourist drugged by fake Uber driver who drained wallets of $123K in BTC & XRP",
		URL:         "https://archive.is/zHpk2",
	},
	{
		Date:        "2025-05-13",
		Severity:    3,
		Location:    "Paris, France",
		Victim:      "Pierre Noizat's daughter",
		Type:        "kidnapping",
		Description: "Attempted abduction of crypto exchange CEO's daughter in broad daylight, caught on camera, attackers were fought off by her partner & bystanders",
		URL:         "https://archive.is/xCoD6",
	},
	{
		Date:        "2025-05-14",
		Severity:    3,
		Location:    "Coronel Bogado, Paraguay",
		Victim:      "Mining Facility",
		Type:        "armed_robbery",
		Description: "3 Chinese citizens entered Paraguay illegally, tried to rob a mining facility, got in a shootout with police, were deported",
		URL:         "https://archive.is/rm7nw",
	},
	{
		Date:        "2025-05-17",
		Severity:    3,
		Location:    "Kampala, Uganda",
		Victim:      "Festo Ivaibi",
		Type:        "kidnapping",
		Description: "Crypto founder abducted by men posing as military, forced to transfer $500,000 at gunpoint. One suspect later arrested",
		URL:         "https://archive.is/UfCv4",
	},
	{
		Date:        "2025-05-18",
		Severity:    1,
		Location:    "Normandie, France",
		Victim:      "Mother & Son",
		Type:        "planned",
		Description: "Victims were being surveilled, had GPS tracker placed on their car. Police counter-surveilled the kidnappers and arrested 5 people before they attacked",
		URL:         "https://archive.is/e33n2",
	},
	{
		Date:        "2025-05-21",
		Severity:    2,
		Location:    "Seoul, South Korea",
		Victim:      "Unidentified man",
		Type:        "robbery",
		Description: "Russian nationals lure victim to hotel for crypto trade, attempt to rob him of 1 billion won, but victim escaped",
		URL:         "https://archive.is/2kDp5",
	},
	{
		Date:        "2025-05-26",
		Severity:    1,
		Location:    "Nantes, France",
		Victim:      "Crypto Entrepreneur",
		Type:        "planned",
		Description: "Police arrest 10 men in balaclavas, foiling their attempted kidnapping of a crypto entrepreneur",
		URL:         "https://archive.is/0do15",
	},
	{
		Date:        "2025-05-27",
		Severity:    3,
		Location:    "Buenos Aires, Argentina",
		Victim:      "Russian Couple",
		Type:        "kidnapping",
		Description: "Chechens invite victims to dinner, take them hostage and demand ransom. A friend sends them $43,000 and they flee to UAE",
		URL:         "https://archive.is/2EHz4",
	},
	{
		Date:        "2025-06-13",
		Severity:    3,
		Location:    "Juvisy-sur-Orge, France",
		Victim:      "26 y/o man",
		Type:        "kidnapping",
		Description: "TikTok trader kidnapped by 4 men as he was returning home, attackers demanded 50K EUR, released after opening his wallet and finding a tiny balance",
		URL:         "https://archive.is/0DPMl",
	},
	{
		Date:        "2025-06-17",
		Severity:    3,
		Location:    "Maisons-Alfort, France",
		Victim:      "23 y/o man",
		Type:        "kidnapping",
		Description: "A 23-year-old man was held for several hours, and the kidnappers demanded a 5k ransom from his wife",
		URL:         "https://archive.is/YXMOD",
	},
	{
		Date:        "2025-06-24",
		Severity:    5,
		Location:    "Goiania, Brazil",
		Victim:      "Undisclosed businessman",
		Type:        "murder",
		Description: "Victim tricked into attending a business meeting that ended up being a wrench attack trap. Attack failed, 2 attackers were killed by police, mastermind was caught fleeing to Miami",
		URL:         "https://archive.is/fm3m3",
	},
	{
		Date:        "2025-06-25",
		Severity:    2,
		Location:    "Bengaluru, India",
		Victim:      "33 y/o businessman",
		Type:        "robbery",
		Description: "OTC trade of $240,000 worth of rupees into USDT. Half a dozen men interrupted the transaction and robbed him",
		URL:         "https://archive.is/fVpB3",
	},
	{
		Date:        "2025-06-30",
		Severity:    2,
		Location:    "Bangkok, Thailand",
		Victim:      "3 people",
		Type:        "robbery",
		Description: "OTC trade of $100,000 USD worth of baht for crypto in a mall parking garage. The 7 suspects had done smaller trades with the victims previously",
		URL:         "https://archive.is/60ICY",
	},
	{
		Date:        "2025-07-07",
		Severity:    2,
		Location:    "Suresnes, France",
		Victim:      "Woman",
		Type:        "robbery",
		Description: "A woman was attacked at her home and punched 10 times in front of her husband and children",
		URL:         "https://archive.is/fg6Kt",
	},
	{
		Date:        "2025-07-08",
		Severity:    3,
		Location:    "Queens, New York, United States",
		Victim:      "38 y/o man",
		Type:        "kidnapping",
		Description: "Victim kidnapped by 6 men and held for 10 days until he transferred $6,000 in fiat & cryptocurrency",
		URL:         "https://archive.is/GPd1J",
	},
	{
		Date:        "2025-07-14",
		Severity:    3,
		Location:    "Jodhpur, India",
		Victim:      "Dilip Gaud & Ramesh Sharma",
		Type:        "extortion",
		Description: "5 constables kidnap 2 men and extort them with threats of false criminal charges until they handed over cash and $9,000 USD worth of cryptocurrency. Cops were later arrested and fired",
		URL:         "https://archive.is/C0MNZ",
	},
	{
		Date:        "2025-07-15",
		Severity:    3,
		Location:    "Ahmedabad, India",
		Victim:      "Prince Pandey",
		Type:        "kidnapping",
		Description: "3 men lured a trader into a trap and assaulted him while demanding 50,000 USDT. The victim's father contacted police and they managed to find and rescue him",
		URL:         "https://archive.is/C0MNZ",
	},
	{
		Date:        "2025-08-02",
		Severity:    3,
		Location:    "Parañaque City, Philippines",
		Victim:      "30 y/o man",
		Type:        "kidnapping",
		Description: "4 Chinese nationals kidnapped a man seeking money transfer services. Victim was handcuffed, threatened with a firearm, physically harmed, and forced to transfer $50,000",
		URL:         "https://archive.is/rBbGz",
	},
	{
		Date:        "2025-08-05",
		Severity:    4,
		Location:    "Paris, France",
		Victim:      "Unidentified man",
		Type:        "torture",
		Description: "5 men threatened, kidnapped, and beat a crypto industry worker before stealing 2M euros in bitcoin from him. The attackers were quickly captured by police",
		URL:         "https://archive.is/L0XLU",
	},
	{
		Date:        "2025-08-06",
		Severity:    3,
		Location:    "Oslo, Norway",
		Victim:      "Norwegian family",
		Type:        "home_invasion",
		Description: "Robbers posing as food-delivery workers tied up a family with three children in their home and threatened to shoot the mother unless the family handed over their cryptocurrency",
		URL:         "https://archive.is/GmRDF",
	},
	{
		Date:        "2025-08-22",
		Severity:    3,
		Location:    "Colombo, Sri Lanka",
		Victim:      "Chinese businessman",
		Type:        "kidnapping",
		Description: "Chinese nationals kidnap man, hold him hostage for a day until he hands over 60,000 USDT",
		URL:         "https://archive.is/CpNB6",
	},
	{
		Date:        "2025-08-26",
		Severity:    3,
		Location:    "Paris, France",
		Victim:      "Alexandre, Crypto trader",
		Type:        "kidnapping",
		Description: "A former cryptocurrency trader, aged 35, was kidnapped and held captive between Paris and Saint-Germain-en-Laye. The kidnappers demanded €10K from his wife for his release",
		URL:         "https://archive.is/LATvI",
	},
	{
		Date:        "2025-08-27",
		Severity:    2,
		Location:    "Phuket, Thailand",
		Victim:      "Alexander",
		Type:        "robbery",
		Description: "A Russian national went to a house for a business investment consultation. When he arrived a group of 4 Russians assaulted him and forced him to transfer 35,000 USDT",
		URL:         "https://archive.is/XzQvE",
	},
	{
		Date:        "2025-08-29",
		Severity:    4,
		Location:    "Valence, Drôme, France",
		Victim:      "23 y/o Swiss man",
		Type:        "torture",
		Description: "A man was kidnapped and tortured for 4 days, possible mistaken identity. He was rescued by GIGN and 7 suspects were arrested",
		URL:         "https://archive.is/KA4wX",
	},
	{
		Date:        "2025-09-05",
		Severity:    3,
		Location:    "Cambridge, Ontario, Canada",
		Victim:      "Undisclosed Youth",
		Type:        "kidnapping",
		Description: "Victim forced into a van by 5 men, physically assaulted, threatened with a gun. Released after being forced to transfer cryptocurrency",
		URL:         "https://archive.is/nB1Y4",
	},
	{
		Date:        "2025-09-07",
		Severity:    4,
		Location:    "Herzliya, Israel",
		Victim:      "Israeli man",
		Type:        "torture",
		Description: "Armed home-invasion: attackers bound and stabbed the resident, forced him to open an Exodus wallet and transferred ~4.94862 BTC and ~42,248.5 USDT (total ≈ $590k), stole a Trezor hardware wallet, laptop and a Rolex",
		URL:         "https://archive.is/dTgTi",
	},
	{
		Date:        "2025-09-19",
		Severity:    3,
		Location:    "Grant, Minnesota, United States",
		Victim:      "Family",
		Type:        "home_invasion",
		Description: "Two brothers from Texas held a MN family hostage at gunpoint for nine hours, forced the father to drive 3 hours to the family cabin to transfer $36,000 in crypto. Son called 911 and attackers were caught",
		URL:         "https://archive.is/gUrIl",
	},
	{
		Date:        "2025-09-26",
		Severity:    3,
		Location:    "Rambouillet, Yvelines, France",
		Victim:      "42 y/o man",
		Type:        "kidnapping",
		Description: "Three men and a woman climbed over the fence of a crypto entrepreneur's property to kidnap him",
		URL:         "https://archive.is/WIFaf",
	},
	{
		Date:        "2025-09-28",
		Severity:    3,
		Location:    "Tierp, Sweden",
		Victim:      "Farmer Family",
		Type:        "home_invasion",
		Description: "Four people arrested after robbing family of millions of dollars worth of cryptocurrency",
		URL:         "https://archive.is/HhUTP",
	},
	{
		Date:        "2025-10-01",
		Severity:    3,
		Location:    "Val-de-Marne, France",
		Victim:      "Family",
		Type:        "home_invasion",
		Description: "A woman and her two children were threatened by two masked individuals in order to blackmail her husband, who is a crypto investor",
		URL:         "https://archive.is/El9EI",
	},
	{
		Date:        "2025-10-02",
		Severity:    5,
		Location:    "Dubai, UAE",
		Victim:      "Roman & Anna Novak",
		Type:        "murder",
		Description: "Russian crypto scammer kidnapped, ransomed, murdered, dismembered by Russian nationals after ransom demands were not met",
		URL:         "https://archive.is/VDkTy",
	},
	{
		Date:        "2025-10-10",
		Severity:    4,
		Location:    "Kharkiv, Ukraine",
		Victim:      "Unidentified man",
		Type:        "torture",
		Description: "Man kidnapped by 3 men in military uniform. He was zip tied, beaten, and threatened with weapons while being held hostage in a basement. Victim released after he transferred 83,000 USDT",
		URL:         "https://archive.is/CVTeL",
	},
	{
		Date:        "2025-10-23",
		Severity:    4,
		Location:    "Sanur Beach, Bali, Indonesia",
		Victim:      "Sergei Domogatskii",
		Type:        "torture",
		Description: "Russian influencer kidnapped, beaten, tased, until he transferred $4,600 in cryptocurrency. Attackers later demanded $1M which he couldn't pay, after which he was released",
		URL:         "https://archive.is/f0FuS",
	},
	{
		Date:        "2025-10-01",
		Severity:    3,
		Location:    "Kahna, Pakistan",
		Victim:      "Waleed",
		Type:        "kidnapping",
		Description: "Bitcoin trader kidnapped by 2 cops & 2 other attackers, released after family paid $45K ransom",
	},
	{
		Date:        "2025-11-01",
		Severity:    3,
		Location:    "Bangkok, Thailand",
		Victim:      "Chinese Man",
		Type:        "kidnapping",
		Description: "3 men kidnap victim off street, force him to send $9,375 USDT. Attackers were later arrested",
		URL:         "https://archive.is/Im7f5",
	},
	{
		Date:        "2025-11-04",
		Severity:    3,
		Location:    "Oxford, England",
		Victim:      "Multiple",
		Type:        "armed_robbery",
		Description: "Car with 3 women & 2 men robbed by 4 men, who forced an occupant to transfer £1.1 million in cryptocurrency. Attackers were later arrested",
		URL:         "https://archive.is/87cGU",
	},
	{
		Date:        "2025-11-22",
		Severity:    3,
		Location:    "San Francisco, California, United States",
		Victim:      "Undisclosed",
		Type:        "home_invasion",
		Description: "Armed robber posing as a delivery worker invaded home, tied up the homeowner, took $11 million worth of cryptocurrency",
		URL:         "https://archive.is/Jecih",
	},
	{
		Date:        "2025-11-22",
		Severity:    3,
		Location:    "Chalon-sur-Saône, France",
		Victim:      "French man",
		Type:        "kidnapping",
		Description: "Six men, including two minors, are suspected of having attempted to kidnap a man holding crypto for the fourth time",
		URL:         "https://archive.is/1QbNM",
	},
	{
		Date:        "2025-11-24",
		Severity:    2,
		Location:    "St. Petersburg, Russia",
		Victim:      "Crypto Exchange",
		Type:        "robbery",
		Description: "21 y/o man robs exchange office with airsoft grenades & smoke grenades. He demanded employees transfer cryptocurrency to his wallet. He was arrested at the scene",
		URL:         "https://archive.is/AbPaI",
	},
	{
		Date:        "2025-11-26",
		Severity:    5,
		Location:    "Vienna, Austria",
		Victim:      "Danylo K",
		Type:        "murder",
		Description: "Son of Ukrainian mayor of Kharkiv betrayed by fellow student, tortured, burned to death after revealing cryptocurrency wallets",
		URL:         "https://archive.is/FgjJ8",
	},
	{
		Date:        "2025-12-01",
		Severity:    3,
		Location:    "Val-d'Oise, France",
		Victim:      "53 y/o man",
		Type:        "kidnapping",
		Description: "The father of a crypto entrepreneur based in Dubai was kidnapped by 4 people",
		URL:         "https://archive.is/Phwb0",
	},
}
