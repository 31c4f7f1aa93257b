package store

import "gatbot/internal/models"

// SeedContact is the default admin contact installed by cmd/seed.
var SeedContact = models.Contact{
	Name:  "Mr. Rajesh Kumar",
	Email: "rajesh.kumar@gat.ac.in",
}

// SeedFAQs is the full GAT FAQ corpus installed by cmd/seed and used to seed
// the in-memory store in development.
var SeedFAQs = []models.FAQ{
	{Question: "When was GAT established?", Answer: "Global Academy of Technology (GAT) was established in 2001 under the National Education Foundation (NEF)."},
	{Question: "Where is GAT located?", Answer: "GAT is located at Aditya Layout, Rajarajeshwari Nagar, Bengaluru, Karnataka – 560098."},
	{Question: "What kind of institution is GAT?", Answer: "GAT is an autonomous private engineering and management college affiliated with VTU, Belagavi."},
	{Question: "Is GAT NAAC accredited?", Answer: "Yes, GAT is NAAC accredited with Grade 'A'."},
	{Question: "Which entrance exams are accepted for admission?", Answer: "GAT accepts KCET, COMEDK UGET, and management quota admissions."},

	{Question: "What is the minimum attendance required?", Answer: "Students must have at least 85% attendance in each subject to appear for semester exams."},
	{Question: "Are there bridge courses for new students?", Answer: "Yes, departments conduct bridge and induction programs for first-year students."},
	{Question: "How is the teaching quality at GAT?", Answer: "GAT faculty are supportive, approachable, and focus on conceptual understanding."},
	{Question: "Is there continuous assessment or only final exams?", Answer: "Grades are based on internal tests, lab work, and end-semester exams."},
	{Question: "Are there certification courses?", Answer: "Yes, each department offers short-term certification and value-added programs."},

	{Question: "What facilities are available on campus?", Answer: "The campus has smart classrooms, advanced labs, WiFi, library, and research centers."},
	{Question: "Is there a gym or sports facility?", Answer: "Yes, there’s a gym, cricket & football grounds, volleyball & basketball courts, and indoor games."},
	{Question: "Is the campus WiFi enabled?", Answer: "Yes, high-speed WiFi is available throughout the campus and hostels."},
	{Question: "How is the library at GAT?", Answer: "The library houses thousands of books, e-resources, and a large reading hall."},
	{Question: "Is there a canteen on campus?", Answer: "Yes, the canteen serves hygienic vegetarian meals, snacks, and beverages."},

	{Question: "Are hostels available for both boys and girls?", Answer: "Yes, separate hostels for boys and girls are available within the campus."},
	{Question: "What are the hostel facilities?", Answer: "Hostels provide WiFi, mess, laundry, study tables, and 24x7 security."},
	{Question: "What is the hostel fee?", Answer: "Hostel fees are around ₹80,000 per year depending on sharing and facilities."},
	{Question: "How to apply for hostel accommodation?", Answer: "Hostel registration can be done online or during the admission process."},
	{Question: "Is outside food delivery allowed in hostels?", Answer: "Yes, within permitted hours and under campus rules."},

	{Question: "What are the main student clubs at GAT?", Answer: "Each department has clubs — CSE has IT Virtuoso, ECE has E-Spectrum, etc."},
	{Question: "Does GAT organize fests?", Answer: "Yes, annual events like GAT Utsav, Techno-Cultural Fest, and Innovation Day are organized."},
	{Question: "Are there entrepreneurship or innovation cells?", Answer: "Yes, GAT has an IEDC and Startup Incubation support system."},
	{Question: "How to join clubs or activities?", Answer: "Students can join clubs at the beginning of each semester via department announcements."},
	{Question: "Are there volunteering opportunities?", Answer: "Yes, through NSS, NCC, and social outreach programs."},

	{Question: "When do students start internships?", Answer: "Usually from 3rd year onwards, depending on the department."},
	{Question: "Are internships mandatory?", Answer: "Yes, one internship is mandatory before final year."},
	{Question: "Does the college help with placements?", Answer: "Yes, the Placement Cell conducts drives and provides training sessions."},
	{Question: "Which companies visit GAT for recruitment?", Answer: "Infosys, TCS, Wipro, Accenture, Amazon, and others."},
	{Question: "What are the highest and average packages?", Answer: "Highest: ₹22 LPA; Average: ₹5 LPA."},

	{Question: "Is there a student counselling system?", Answer: "Yes, each student is assigned a faculty mentor for guidance."},
	{Question: "Is there an anti-ragging cell?", Answer: "Yes, GAT has an Anti-Ragging Committee and Grievance Cell."},
	{Question: "Is medical help available on campus?", Answer: "Yes, a medical room with a doctor-on-call facility is available."},
	{Question: "Are scholarships available?", Answer: "Yes, both government and private scholarships are available."},
	{Question: "Is transport available for students?", Answer: "Yes, buses operate across major routes in Bengaluru."},

	{Question: "How are internal marks calculated?", Answer: "Through class tests, assignments, and attendance."},
	{Question: "What is the passing grade?", Answer: "Students need at least 40% overall (internal + external)."},
	{Question: "When are semester exams held?", Answer: "Odd semester in December and even semester in June."},
	{Question: "How to check results?", Answer: "Results are available on the college or VTU website."},
	{Question: "Are supplementary exams conducted?", Answer: "Yes, for students with backlogs."},

	{Question: "Does GAT have an alumni association?", Answer: "Yes, alumni actively support mentoring and placements."},
	{Question: "Are alumni involved in mentoring?", Answer: "Yes, alumni deliver lectures and help with career guidance."},
	{Question: "What are typical career paths?", Answer: "Students work in IT, core industries, startups, or pursue higher studies."},
	{Question: "Does GAT support GATE or GRE preparation?", Answer: "Yes, training sessions and workshops are organized."},
	{Question: "What percentage of students get placed?", Answer: "Around 85–90% of eligible students get placed every year."},

	{Question: "Who is the HOD of Computer Science Engineering?", Answer: "Dr. Kumaraswamy S. is the HOD of the CSE Department."},
	{Question: "Who is the HOD of CSE AI and ML?", Answer: "Dr. R. Chandramma is the HOD of the CSE (AI & ML) Department."},
	{Question: "Who is the HOD of Information Science?", Answer: "Dr. Kiran Y. C. is the HOD of the ISE Department."},
	{Question: "Who is the HOD of Electronics and Communication?", Answer: "Dr. Madhavi Mallam is the HOD of the ECE Department."},
	{Question: "Who is the HOD of Electrical Engineering?", Answer: "Dr. Deepika Masand is the HOD of the EEE Department."},
	{Question: "Who is the HOD of Mechanical Engineering?", Answer: "Dr. Bharat Vinjamuri is the HOD of the Mechanical Department."},
	{Question: "Who is the HOD of Civil Engineering?", Answer: "Dr. Allamaprabhu Kamatagi is the HOD of the Civil Engineering Department."},
	{Question: "Who is the HOD of Mathematics?", Answer: "Dr. Rupa K is the HOD of the Department of Mathematics."},
	{Question: "Who is the HOD of MBA Department?", Answer: "Dr. Sanjeev Kumar Thalari is the HOD of Management Studies (MBA)."},
}
