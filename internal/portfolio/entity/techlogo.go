package entity

import (
	"strings"

	"github.com/samber/lo"
)

// FallbackLogo is the generic code icon for unknown technologies.
const FallbackLogo = "https://cdn.jsdelivr.net/npm/simple-icons@v9/icons/code.svg"

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var techLogos = map[string]string{
	"Python":       devicon + "python/python-original.svg",
	"SQL":          devicon + "mysql/mysql-original.svg",
	"MySQL":        devicon + "mysql/mysql-original.svg",
	"PostgreSQL":   devicon + "postgresql/postgresql-original.svg",
	"Pandas":       devicon + "pandas/pandas-original.svg",
	"NumPy":        devicon + "numpy/numpy-original.svg",
	"Matplotlib":   devicon + "matplotlib/matplotlib-original.svg",
	"Seaborn":      "https://seaborn.pydata.org/_images/logo-mark-lightbg.svg",
	"Scikit-learn": "https://upload.wikimedia.org/wikipedia/commons/0/05/Scikit_learn_logo_small.svg",
	"TensorFlow":   devicon + "tensorflow/tensorflow-original.svg",
	"Keras":        "https://upload.wikimedia.org/wikipedia/commons/a/ae/Keras_logo.svg",
	"Flask":        devicon + "flask/flask-original.svg",
	"Django":       devicon + "django/django-plain.svg",
	"Tableau":      "https://cdn.worldvectorlogo.com/logos/tableau-software.svg",
	"PowerBI":      "https://upload.wikimedia.org/wikipedia/commons/c/cf/New_Power_BI_Logo.svg",
	"Power BI":     "https://upload.wikimedia.org/wikipedia/commons/c/cf/New_Power_BI_Logo.svg",
	"Excel":        "https://upload.wikimedia.org/wikipedia/commons/3/34/Microsoft_Office_Excel_%282019%E2%80%93present%29.svg",
	"Jupyter":      devicon + "jupyter/jupyter-original.svg",
	"Git":          devicon + "git/git-original.svg",
	"GitHub":       devicon + "github/github-original.svg",
	"Docker":       devicon + "docker/docker-original.svg",
	"AWS":          devicon + "amazonwebservices/amazonwebservices-original-wordmark.svg",
	"Azure":        devicon + "azure/azure-original.svg",
	"R":            devicon + "r/r-original.svg",
	"Java":         devicon + "java/java-original.svg",
	"JavaScript":   devicon + "javascript/javascript-original.svg",
	"HTML":         devicon + "html5/html5-original.svg",
	"CSS":          devicon + "css3/css3-original.svg",
	"React":        devicon + "react/react-original.svg",
	"MongoDB":      devicon + "mongodb/mongodb-original.svg",
	"Spark":        devicon + "apachespark/apachespark-original.svg",
	"Hadoop":       devicon + "hadoop/hadoop-original.svg",
	"Kaggle":       "https://cdn4.iconfinder.com/data/icons/logos-and-brands/512/189_Kaggle_logo_logos-512.png",
}

type Tech struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// TechLogo resolves a logo by exact name, then case-insensitively, then
// falls back to FallbackLogo.
func TechLogo(name string) string {
	if logo, ok := techLogos[name]; ok {
		return logo
	}

	key, ok := lo.FindKeyBy(techLogos, func(k, _ string) bool {
		return strings.EqualFold(k, name)
	})
	if ok {
		return techLogos[key]
	}

	return FallbackLogo
}

// Techs pairs each name with its logo.
func Techs(names []string) []Tech {
	return lo.Map(names, func(n string, _ int) Tech {
		return Tech{Name: n, Logo: TechLogo(n)}
	})
}
