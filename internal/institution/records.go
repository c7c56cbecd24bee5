package institution

import "github.com/jonathan/jd-matcher/internal/types"

// records is the curated institution table. Aliases are written as people
// type them; the index normalizes them.
var records = []types.InstitutionRecord{
	// Vietnam, top tier
	{
		CanonicalName: "Đại học Bách khoa Hà Nội",
		Aliases:       []string{"Trường Đại học Bách khoa Hà Nội", "Bách khoa Hà Nội", "HUST", "Hanoi University of Science and Technology"},
		Tier:          types.TierTop,
		QualityWeight: 0.95,
	},
	{
		CanonicalName: "Trường Đại học Bách khoa - ĐHQG TP.HCM",
		Aliases:       []string{"Đại học Bách khoa TP.HCM", "Đại học Bách khoa TP HCM", "Bách khoa TP.HCM", "Đại học Bách khoa Thành phố Hồ Chí Minh", "HCMUT", "Ho Chi Minh City University of Technology"},
		Tier:          types.TierTop,
		QualityWeight: 0.95,
	},
	{
		CanonicalName: "Trường Đại học Bách khoa - Đại học Đà Nẵng",
		Aliases:       []string{"Đại học Bách khoa Đà Nẵng", "Bách khoa Đà Nẵng", "DUT", "Danang University of Science and Technology"},
		Tier:          types.TierHigh,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "Trường Đại học Công nghệ - ĐHQG Hà Nội",
		Aliases:       []string{"Đại học Công nghệ ĐHQGHN", "Đại học Công nghệ Hà Nội", "UET", "VNU University of Engineering and Technology"},
		Tier:          types.TierTop,
		QualityWeight: 0.92,
	},
	{
		CanonicalName: "Trường Đại học Khoa học Tự nhiên - ĐHQG TP.HCM",
		Aliases:       []string{"Đại học Khoa học Tự nhiên TP.HCM", "Đại học Khoa học Tự nhiên TP HCM", "KHTN TP.HCM", "HCMUS", "VNUHCM University of Science"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Trường Đại học Khoa học Tự nhiên - ĐHQG Hà Nội",
		Aliases:       []string{"Đại học Khoa học Tự nhiên Hà Nội", "HUS", "VNU University of Science"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Trường Đại học Công nghệ Thông tin - ĐHQG TP.HCM",
		Aliases:       []string{"Đại học Công nghệ Thông tin TP.HCM", "Đại học Công nghệ Thông tin TP HCM", "UIT", "University of Information Technology"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Đại học Kinh tế Quốc dân",
		Aliases:       []string{"Trường Đại học Kinh tế Quốc dân", "Kinh tế Quốc dân", "NEU", "National Economics University"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Trường Đại học Kinh tế - Luật - ĐHQG TP.HCM",
		Aliases:       []string{"Đại học Kinh tế - Luật", "Đại học Kinh tế Luật", "Kinh tế - Luật", "UEL", "University of Economics and Law"},
		Tier:          types.TierHigh,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "Trường Đại học Ngoại thương",
		Aliases:       []string{"Đại học Ngoại thương", "Ngoại thương", "FTU", "Foreign Trade University"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Đại học Kinh tế TP.HCM",
		Aliases:       []string{"Đại học Kinh tế TP HCM", "Đại học Kinh tế Thành phố Hồ Chí Minh", "UEH", "University of Economics Ho Chi Minh City"},
		Tier:          types.TierHigh,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "Trường Đại học Y Hà Nội",
		Aliases:       []string{"Đại học Y Hà Nội", "HMU", "Hanoi Medical University"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Đại học Y Dược TP.HCM",
		Aliases:       []string{"Đại học Y Dược TP HCM", "Đại học Y Dược Thành phố Hồ Chí Minh", "UMP", "University of Medicine and Pharmacy at Ho Chi Minh City"},
		Tier:          types.TierTop,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "Trường Đại học Sư phạm Hà Nội",
		Aliases:       []string{"Đại học Sư phạm Hà Nội", "HNUE", "Hanoi National University of Education"},
		Tier:          types.TierHigh,
		QualityWeight: 0.8,
	},
	{
		CanonicalName: "Trường Đại học Luật Hà Nội",
		Aliases:       []string{"Đại học Luật Hà Nội", "HLU", "Hanoi Law University"},
		Tier:          types.TierHigh,
		QualityWeight: 0.8,
	},
	{
		CanonicalName: "Học viện Công nghệ Bưu chính Viễn thông",
		Aliases:       []string{"Học viện Bưu chính Viễn thông", "PTIT", "Posts and Telecommunications Institute of Technology"},
		Tier:          types.TierHigh,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "Trường Đại học FPT",
		Aliases:       []string{"Đại học FPT", "FPT University"},
		Tier:          types.TierHigh,
		QualityWeight: 0.8,
	},
	{
		CanonicalName: "Trường Đại học Tôn Đức Thắng",
		Aliases:       []string{"Đại học Tôn Đức Thắng", "Tôn Đức Thắng", "TDTU", "Ton Duc Thang University"},
		Tier:          types.TierStandard,
		QualityWeight: 0.7,
	},
	{
		CanonicalName: "Trường Đại học Cần Thơ",
		Aliases:       []string{"Đại học Cần Thơ", "CTU", "Can Tho University"},
		Tier:          types.TierStandard,
		QualityWeight: 0.7,
	},
	{
		CanonicalName: "Trường Đại học Khoa học - Đại học Huế",
		Aliases:       []string{"Đại học Khoa học Huế", "HUSC"},
		Tier:          types.TierStandard,
		QualityWeight: 0.65,
	},
	{
		CanonicalName: "Trường Đại học Công nghiệp TP.HCM",
		Aliases:       []string{"Đại học Công nghiệp TP.HCM", "Đại học Công nghiệp TP HCM", "IUH", "Industrial University of Ho Chi Minh City"},
		Tier:          types.TierStandard,
		QualityWeight: 0.65,
	},
	{
		CanonicalName: "Trường Đại học Giao thông Vận tải",
		Aliases:       []string{"Đại học Giao thông Vận tải Hà Nội", "UTC", "University of Transport and Communications"},
		Tier:          types.TierStandard,
		QualityWeight: 0.7,
	},
	{
		CanonicalName: "Trường Đại học Thủy lợi",
		Aliases:       []string{"Đại học Thủy lợi", "TLU", "Thuyloi University"},
		Tier:          types.TierStandard,
		QualityWeight: 0.65,
	},
	{
		CanonicalName: "Trường Đại học Mở TP.HCM",
		Aliases:       []string{"Đại học Mở TP.HCM", "Đại học Mở TP HCM", "Ho Chi Minh City Open University"},
		Tier:          types.TierStandard,
		QualityWeight: 0.6,
	},
	// Branch campuses and international
	{
		CanonicalName: "RMIT University Vietnam",
		Aliases:       []string{"RMIT Vietnam", "RMIT Việt Nam", "Đại học RMIT", "RMIT"},
		Tier:          types.TierInternational,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "Fulbright University Vietnam",
		Aliases:       []string{"Đại học Fulbright Việt Nam", "Fulbright University"},
		Tier:          types.TierInternational,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "VinUniversity",
		Aliases:       []string{"Đại học VinUni", "VinUni"},
		Tier:          types.TierInternational,
		QualityWeight: 0.85,
	},
	{
		CanonicalName: "Massachusetts Institute of Technology",
		Aliases:       []string{"MIT"},
		Tier:          types.TierInternational,
		QualityWeight: 1.0,
	},
	{
		CanonicalName: "Stanford University",
		Aliases:       []string{"Stanford"},
		Tier:          types.TierInternational,
		QualityWeight: 1.0,
	},
	{
		CanonicalName: "National University of Singapore",
		Aliases:       []string{"NUS"},
		Tier:          types.TierInternational,
		QualityWeight: 0.95,
	},
	{
		CanonicalName: "Nanyang Technological University",
		Aliases:       []string{"NTU Singapore"},
		Tier:          types.TierInternational,
		QualityWeight: 0.95,
	},
	{
		CanonicalName: "The University of Melbourne",
		Aliases:       []string{"University of Melbourne"},
		Tier:          types.TierInternational,
		QualityWeight: 0.9,
	},
	{
		CanonicalName: "The University of Tokyo",
		Aliases:       []string{"University of Tokyo", "Todai"},
		Tier:          types.TierInternational,
		QualityWeight: 0.95,
	},
	{
		CanonicalName: "KAIST",
		Aliases:       []string{"Korea Advanced Institute of Science and Technology"},
		Tier:          types.TierInternational,
		QualityWeight: 0.95,
	},
}

// fakePatterns are marketing or spoofed institution names. A line that
// matches one is never looked up.
var fakePatterns = []string{
	"dai hoc top",
	"truong top",
	"top cv",
	"top university",
	"top universities",
	"best university",
	"number one university",
	"university of top",
	"world class university",
	"dai hoc so 1",
	"dai hoc hang dau",
}

// cityIndicators locate an institution by city.
var cityIndicators = []string{
	"ha noi", "hanoi", "ho chi minh", "hcm", "tp hcm", "tphcm", "hcmc", "sai gon", "saigon",
	"da nang", "danang", "hai phong", "can tho", "hue", "nha trang", "quy nhon", "vinh",
	"thai nguyen", "da lat", "buon ma thuot", "vung tau", "bien hoa", "singapore", "tokyo",
	"melbourne", "sydney", "seoul",
}

// locatingKeywords identify exactly one institution or campus family without a city.
var locatingKeywords = []string{
	"bach khoa", "fpt", "rmit", "quoc dan", "ngoai thuong", "ton duc thang", "fulbright",
	"vinuni", "vinuniversity", "hust", "hcmut", "hcmus", "uet", "neu", "ftu", "ueh", "ptit",
	"buu chinh vien thong", "dhqg", "dhqghn", "vnu", "vnuhcm", "kinh te luat", "uel",
	"economics and law",
}

// genericNames are shared by several institutions and need a city to resolve.
var genericNames = []string{
	"dai hoc kinh te",
	"dai hoc y",
	"dai hoc y duoc",
	"dai hoc su pham",
	"dai hoc su pham ky thuat",
	"dai hoc luat",
	"dai hoc khoa hoc tu nhien",
	"dai hoc khoa hoc",
	"dai hoc cong nghe",
	"dai hoc cong nghiep",
	"dai hoc cong nghe thong tin",
	"dai hoc giao thong van tai",
	"dai hoc kien truc",
	"dai hoc mo",
	"dai hoc nong lam",
	"dai hoc van hoa",
	"university of economics",
	"university of medicine",
	"medical university",
	"university of education",
	"university of law",
	"university of science",
	"university of technology",
}
