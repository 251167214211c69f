package vocab

// builtin seeds Default with a baseline vocabulary. Severities follow
// common-usage strength; callers that disagree can widen the list with Set
// or narrow matching with SetThreshold. Plural and inflected forms are
// separate entries since matching is whole-word.
var builtin = []struct {
	word     string
	severity Severity
}{
	{"arse", Profane | Mild},
	{"arsehole", Profane | Moderate},
	{"ass", Profane | Mild},
	{"asses", Profane | Mild},
	{"asshole", Profane | Moderate},
	{"assholes", Profane | Moderate},
	{"bastard", Offensive | Mild},
	{"bastards", Offensive | Mild},
	{"bitch", Offensive | Moderate},
	{"bitches", Offensive | Moderate},
	{"bollocks", Profane | Mild},
	{"boner", Sexual | Mild},
	{"boob", Sexual | Mild},
	{"boobs", Sexual | Mild},
	{"bullshit", Profane | Moderate},
	{"cock", Sexual | Moderate},
	{"cocks", Sexual | Moderate},
	{"crap", Profane | Mild},
	{"cunt", Sexual | Severe},
	{"cunts", Sexual | Severe},
	{"dammit", Profane | Mild},
	{"damn", Profane | Mild},
	{"damnit", Profane | Mild},
	{"dick", Sexual | Moderate},
	{"dickhead", Offensive | Moderate},
	{"dicks", Sexual | Moderate},
	{"dildo", Sexual | Moderate},
	{"douche", Offensive | Mild},
	{"douchebag", Offensive | Moderate},
	{"dumbass", Offensive | Mild},
	{"fuck", Profane | Severe},
	{"fucked", Profane | Severe},
	{"fucker", Profane | Severe},
	{"fuckers", Profane | Severe},
	{"fucking", Profane | Severe},
	{"fucks", Profane | Severe},
	{"goddamn", Profane | Mild},
	{"jackass", Offensive | Mild},
	{"jerk", Mean | Mild},
	{"jizz", Sexual | Moderate},
	{"motherfucker", Profane | Severe},
	{"motherfuckers", Profane | Severe},
	{"penis", Sexual | Mild},
	{"piss", Profane | Mild},
	{"pissed", Profane | Mild},
	{"prick", Offensive | Moderate},
	{"pussies", Sexual | Moderate},
	{"pussy", Sexual | Moderate},
	{"shit", Profane | Moderate},
	{"shits", Profane | Moderate},
	{"shitty", Profane | Moderate},
	{"slut", Sexual | Moderate},
	{"sluts", Sexual | Moderate},
	{"stfu", Profane | Mild},
	{"tits", Sexual | Mild},
	{"turd", Profane | Mild},
	{"twat", Sexual | Moderate},
	{"wanker", Profane | Moderate},
	{"whore", Sexual | Moderate},
	{"whores", Sexual | Moderate},
	{"wtf", Profane | Mild},
}
