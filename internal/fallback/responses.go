package fallback

import "sort"

// LocaleBase selects the built-in table with no overlay applied.
const LocaleBase = "en"

// baseResponses is the rural English table. Order is precedence: "hi" is
// checked before the topic keywords, so any message containing "hi" (such as
// "which") gets the greeting.
var baseResponses = []Entry{
	{"hello", "Hello! I'm your Rural Career Guide. I can help you explore career options in agriculture, education, healthcare, and digital fields. What would you like to know?"},
	{"hi", "Hi there! I'm here to help rural communities find career opportunities. How can I assist you today?"},
	{"career", "Rural areas offer diverse career paths including: 1) Agriculture and agribusiness, 2) Healthcare services, 3) Education, 4) Tourism and hospitality, 5) Digital and remote work. Which area interests you?"},
	{"agriculture", "Modern agriculture careers include: organic farming, agricultural technology, food processing, farm management, agricultural research, and sustainable farming practices."},
	{"education", "Education opportunities in rural areas: teaching positions, vocational training, adult education programs, and educational administration roles."},
	{"jobs", "Local job opportunities include healthcare workers, teachers, agricultural specialists, tourism professionals, and digital service providers."},
	{"training", "Available training programs: government skill development initiatives, online courses, vocational training centers, and apprenticeship programs."},
	{"healthcare", "Healthcare roles in rural areas include community health workers, nursing assistants, pharmacy technicians, lab technicians, and telemedicine coordinators. Many start with short certificate courses."},
	{"skill", "Useful skills to build: basic computer use, spoken English, accounting and bookkeeping, mobile repair, tailoring, electrical work, and modern farming techniques. Local vocational centers and online courses can help."},
	{"digital", "Digital work you can do from a village: data entry, online tutoring, content writing, social media management, and running a common service center. A smartphone or computer and a stable internet connection are the main requirements."},
	{"business", "Small rural business ideas: dairy, poultry, food processing, handicrafts, agri-input shops, and rural tourism homestays. Government schemes and local banks offer loans for first-time entrepreneurs."},
	{DefaultKeyword, "I specialize in rural career guidance. You can ask me about: career options, training programs, job opportunities, skill development, or specific fields like agriculture, education, or healthcare."},
}

// overlays replace base responses in place and may add keywords of their own.
var overlays = map[string][]Entry{
	"hinglish": {
		{"career", "Gaon mein bhi career ke bahut options hain: kheti aur agribusiness, healthcare, teaching, tourism, aur digital ya remote kaam. Aapko kis field mein interest hai?"},
		{"agriculture", "Agriculture mein naye career: organic farming, agri-technology, food processing, farm management, aur research. Sarkari yojanaon se training aur loan bhi mil sakta hai."},
		{"jobs", "Local jobs ke options: health worker, teacher, agriculture specialist, tourism guide, aur digital services. Apne block office aur rozgar portal par bhi check karein."},
		{"training", "Training ke liye: Skill India jaise sarkari programs, online courses, ITI aur vocational centers, aur apprenticeship programs dekhiye."},
		{"naukri", "Naukri dhoondhne ke liye apne area ke rozgar mela, block office, aur online job portals check karein. Batayiye aapko kis field mein kaam chahiye?"},
		{"kheti", "Kheti ko business banaiye: organic farming, dairy, mushroom ya poultry, aur food processing. Krishi Vigyan Kendra se free training milti hai."},
	},
}

// Locales returns the names of the built-in locales.
func Locales() []string {
	names := []string{LocaleBase}
	for name := range overlays {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}
