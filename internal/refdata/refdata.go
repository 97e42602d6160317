// Package refdata holds the static institutional reference tables and the
// abbreviation resolver built from them. The tables are loaded once at
// startup and never mutated, so the resolver is safe to share across
// concurrent verifications without locking.
package refdata

// Colleges maps official college codes to full names.
var Colleges = map[string]string{
	"CAL":  "College of Arts and Letters",
	"CBA":  "College of Business Administration",
	"CED":  "College of Education",
	"CFA":  "College of Fine Arts",
	"CHE":  "College of Home Economics",
	"CHK":  "College of Human Kinetics",
	"CLAW": "College of Law",
	"CM":   "College of Music",
	"CMC":  "College of Mass Communication",
	"CN":   "College of Nursing",
	"COE":  "College of Engineering",
	"CS":   "College of Science",
	"CSSP": "College of Social Sciences and Philosophy",
	"CSWCD": "College of Social Work and Community Development",
	"SE":   "School of Economics",
	"SLIS": "School of Library and Information Studies",
	"SOLAIR": "School of Labor and Industrial Relations",
	"SURP": "School of Urban and Regional Planning",
	"STAT": "School of Statistics",
	"AIT":  "Asian Institute of Tourism",
	"NCPAG": "National College of Public Administration and Governance",
}

// Departments maps degree-program abbreviations to full program names.
var Departments = map[string]string{
	"BSCS":   "Bachelor of Science in Computer Science",
	"BSCE":   "Bachelor of Science in Civil Engineering",
	"BSCHE":  "Bachelor of Science in Chemical Engineering",
	"BSCOE":  "Bachelor of Science in Computer Engineering",
	"BSEE":   "Bachelor of Science in Electrical Engineering",
	"BSECE":  "Bachelor of Science in Electronics and Communications Engineering",
	"BSGE":   "Bachelor of Science in Geodetic Engineering",
	"BSIE":   "Bachelor of Science in Industrial Engineering",
	"BSME":   "Bachelor of Science in Mechanical Engineering",
	"BSMETE": "Bachelor of Science in Metallurgical Engineering",
	"BSBIO":  "Bachelor of Science in Biology",
	"BSCHEM": "Bachelor of Science in Chemistry",
	"BSMATH": "Bachelor of Science in Mathematics",
	"BSAM":   "Bachelor of Science in Applied Mathematics",
	"BSPHYS": "Bachelor of Science in Physics",
	"BSGEOL": "Bachelor of Science in Geology",
	"BSSTAT": "Bachelor of Science in Statistics",
	"BSBA":   "Bachelor of Science in Business Administration",
	"BSA":    "Bachelor of Science in Accountancy",
	"BSECON": "Bachelor of Science in Economics",
	"BSN":    "Bachelor of Science in Nursing",
	"BSPSYCH": "Bachelor of Science in Psychology",
	"BSTRM":  "Bachelor of Science in Tourism",
	"BACOMM": "Bachelor of Arts in Communication",
	"BAJOURN": "Bachelor of Arts in Journalism",
	"BAPS":   "Bachelor of Arts in Political Science",
	"BASOC":  "Bachelor of Arts in Sociology",
	"BEED":   "Bachelor of Elementary Education",
	"BSED":   "Bachelor of Secondary Education",
	"BFA":    "Bachelor of Fine Arts",
	"BM":     "Bachelor of Music",
	"LLB":    "Bachelor of Laws",
}

// Units maps administrative unit codes to full names. These show up in
// document letterheads and stamps.
var Units = map[string]string{
	"OUR":   "Office of the University Registrar",
	"OSA":   "Office of Student Affairs",
	"OSSS":  "Office of Scholarships and Student Services",
	"OVCAA": "Office of the Vice Chancellor for Academic Affairs",
	"OVCSA": "Office of the Vice Chancellor for Student Affairs",
	"UHS":   "University Health Service",
	"UPD":   "University of the Philippines Diliman",
	"UPM":   "University of the Philippines Manila",
	"UPLB":  "University of the Philippines Los Banos",
}
