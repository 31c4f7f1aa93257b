package chat

import "strings"

// rule maps a department keyword to its canned department-head answer.
type rule struct {
	keyword string
	answer  string
}

// hodRules is scanned in order; the first keyword contained in the question
// wins. Department-head answers are factual lookups and must never be
// overridden by fuzzy matching, so this table runs before the FAQ matcher.
var hodRules = []rule{
	{"cse", "Dr. Kumaraswamy S. is the HOD of the Computer Science and Engineering Department."},
	{"computer science", "Dr. Kumaraswamy S. is the HOD of the Computer Science and Engineering Department."},
	{"ai", "Dr. R. Chandramma is the HOD of the CSE (AI & ML) Department."},
	{"ml", "Dr. R. Chandramma is the HOD of the CSE (AI & ML) Department."},
	{"ise", "Dr. Kiran Y. C. is the HOD of the Information Science Engineering Department."},
	{"information", "Dr. Kiran Y. C. is the HOD of the Information Science Engineering Department."},
	{"ece", "Dr. Madhavi Mallam is the HOD of the Electronics and Communication Engineering Department."},
	{"electronics", "Dr. Madhavi Mallam is the HOD of the Electronics and Communication Engineering Department."},
	{"eee", "Dr. Deepika Masand is the HOD of the Electrical and Electronics Engineering Department."},
	{"electrical", "Dr. Deepika Masand is the HOD of the Electrical and Electronics Engineering Department."},
	{"mechanical", "Dr. Bharat Vinjamuri is the HOD of the Mechanical Engineering Department."},
	{"civil", "Dr. Allamaprabhu Kamatagi is the HOD of the Civil Engineering Department."},
	{"math", "Dr. Rupa K is the HOD of the Department of Mathematics."},
	{"mba", "Dr. Sanjeev Kumar Thalari is the HOD of Management Studies (MBA)."},
}

// MatchRule returns the canned answer for a department-head question. The
// question is only lower-cased, not fully normalized: it must contain the
// literal substring "hod" and then one of the department keywords.
func MatchRule(question string) (string, bool) {
	q := strings.ToLower(question)
	if !strings.Contains(q, "hod") {
		return "", false
	}

	for _, r := range hodRules {
		if strings.Contains(q, r.keyword) {
			return r.answer, true
		}
	}
	return "", false
}
