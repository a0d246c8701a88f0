package entity

type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Image    string `json:"image"`
}

// DefaultProfile is served until data/profile.json exists.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Your Name",
		Title:    "Data Analyst",
		Tagline:  "Transforming Data into Actionable Insights",
		Bio:      "Aspiring Data Analyst with strong analytical skills and a passion for extracting meaningful insights from complex datasets.",
		Email:    "your.email@example.com",
		Phone:    "+1 234 567 8900",
		Location: "City, Country",
		LinkedIn: "https://linkedin.com/in/yourprofile",
		GitHub:   "https://github.com/yourusername",
		Image:    "profile.jpg",
	}
}
