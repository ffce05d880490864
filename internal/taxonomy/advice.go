package taxonomy

// Advice is the fixed career guidance attached to one profession category.
type Advice struct {
	Basic          []string
	Advanced       []string
	Certifications []string
}

// AdviceFor returns the advice record for a profession category. The switch
// is exhaustive over Professions; ok is false only for a category outside the
// closed enumeration, which callers surface as "no advice available" rather
// than an empty record.
func AdviceFor(category string) (Advice, bool) {
	switch category {
	case "кибербезопасность":
		return Advice{
			Basic:          []string{"python", "linux", "networking"},
			Advanced:       []string{"aws", "docker", "kubernetes"},
			Certifications: []string{"CISSP", "CEH"},
		}, true
	case "DevSecOps":
		return Advice{
			Basic:          []string{"git", "ci/cd", "docker"},
			Advanced:       []string{"kubernetes", "aws", "azure"},
			Certifications: []string{"AWS Certified Security", "Certified Kubernetes Administrator"},
		}, true
	case "пентестер":
		return Advice{
			Basic:          []string{"ethical hacking", "python", "networking"},
			Advanced:       []string{"penetration testing", "owasp", "reverse engineering"},
			Certifications: []string{"OSCP", "CEH"},
		}, true
	case "антифрод-аналитик":
		return Advice{
			Basic:          []string{"data analysis", "sql", "python"},
			Advanced:       []string{"machine learning", "big data", "fraud detection"},
			Certifications: []string{"CFE", "CAMS"},
		}, true
	case "руководитель отдела информационной безопасности":
		return Advice{
			Basic:          []string{"project management", "risk management", "compliance"},
			Advanced:       []string{"leadership", "strategic planning", "budgeting"},
			Certifications: []string{"CISSP", "CISM"},
		}, true
	case "аналитик по расследованию компьютерных инцидентов":
		return Advice{
			Basic:          []string{"forensics", "incident response", "networking"},
			Advanced:       []string{"malware analysis", "threat intelligence", "SIEM"},
			Certifications: []string{"GCFA", "GCIH"},
		}, true
	case "архитектор информационной безопасности":
		return Advice{
			Basic:          []string{"security architecture", "networking", "cloud security"},
			Advanced:       []string{"zero trust architecture", "devsecops", "threat modeling"},
			Certifications: []string{"CISSP-ISSAP", "TOGAF"},
		}, true
	}
	return Advice{}, false
}
