package content

// Achievement is an unlockable title keyed by attempt count
type Achievement struct {
	Attempts    int
	Title       string
	Description string
}

// Achievements lists the death milestones in ascending order
var Achievements = []Achievement{
	{1, "Primeira Morte", "Bem-vindo ao clube dos fracassados! 💀"},
	{10, "Tentativa e Erro", "10 mortes! Você está aprendendo... lentamente."},
	{25, "Persistência Duvidosa", "25 mortes? Você tem problemas..."},
	{50, "Persistência Questionável", "50 mortes? Sério?"},
	{100, "Definição de Insanidade", "100 mortes fazendo a mesma coisa..."},
	{200, "Masoquista Supremo", "200 mortes! Você precisa de ajuda profissional!"},
}

// AchievementFor returns the milestone matching attempts exactly
func AchievementFor(attempts int) (Achievement, bool) {
	for _, a := range Achievements {
		if a.Attempts == attempts {
			return a, true
		}
	}
	return Achievement{}, false
}
