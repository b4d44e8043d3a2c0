package content

// Status lines for core transitions
const (
	Welcome        = "Prepare-se para a frustração suprema! 😈"
	GameStart      = "Que comece o sofrimento! 🔥"
	PauseMsg       = "Desistindo já? Que fraco! 😂"
	ResumeMsg      = "Voltou? Que corajoso... 😈"
	MultiplayerMsg = "Jogador MLGPro_2024 entrou na partida! 🎮"
	LifeLost       = "Perdeu uma vida... que pena! 💔"
	WallHit        = "PAREDE INVISÍVEL! Que azar! 😂"
	TrollPickup    = "Era uma armadilha! Você perdeu pontos! 😂"
	UltimateMode   = "MODO SUPREMO ATIVADO! Boa sorte... vai precisar! 💀"
	RestartMsg     = "De volta para mais sofrimento? Que dedicação! 😂"
	SaveDone       = "Progresso 'salvo' com sucesso! (Não mesmo!) 💾❌"
	SaveStart      = "Salvando progresso... PSIU! Resetando tudo! 😂"
	QuitMsg        = "Desistir? JAMAIS! Você vai continuar sofrendo! 😈"
	EasyModeMsg    = "Modo Fácil ativado! Prepare-se para o INFERNO! 🔥"
	SettingsOpened = "Configurações abertas! Nada aqui funciona direito! ⚙️"
	RankingShown   = "Ranking global! Você está em último, como sempre! 🏆💀"
	HelpGlitch     = "ACHOU QUE IA ME AJUDAR, NÉ? AGORA ESTÁ TUDO PIOR! 😈"
	CountdownJoke  = "SÓ BRINCANDO! 😂"
	CountdownTaunt = "Achou que ia ter uma última chance? Que inocente! 😈"
	LevelUpFormat  = "Nível %d! Agora fica mais difícil! 😈"
	VolumeFormat   = "Volume ajustado para %d%%... ou não! 😏"
)

// Troll perturbation lines
const (
	InversionOn     = "CONTROLES INVERTIDOS! 🔄"
	InversionOff    = "Controles normais... por enquanto. 😏"
	FreezeOn        = "CONTROLES CONGELADOS! Você não pode se mover! 🥶"
	FreezeOff       = "Controles restaurados. Não diga que não avisei! 😈"
	DarkModeOn      = "Modo Escuro ativado! Boa sorte pra enxergar agora! 🌚"
	DarkModeOff     = "Modo Claro forçado! ☀️"
	LagRestored     = "Conexão 'restaurada'! Foi só uma brincadeira! 📶"
	LagBanner       = "CONEXÃO PERDIDA... RECONECTANDO..."
	ColorBlindOn    = "Modo daltonismo ativado! Agora as cores estão PIORES! 🌈💀"
	ColorBlindOff   = "Cores normais restauradas... mais ou menos! 🎨"
	GameOverTitle   = "GAME OVER"
	FinalOverTitle  = "GAME OVER DE VERDADE"
	FakeRestartHint = "ENTER para tentar de novo"
	RealRestartHint = "ENTER para recomeçar"
)

// Anti-cheat taunts, cosmetic only
const (
	TauntDevTools   = "Tentativa patética de trapacear! 😂"
	TauntRightClick = "Clique direito? Não funciona aqui! 😂"
	TauntFocusLost  = "Fugindo do jogo? Que covarde! 🏃‍♂️"
	TauntFocusBack  = "Voltou? O jogo sentiu sua falta... NÃO! 😈"
	TauntPaste      = "Colando trapaças? Não vai funcionar! 📋❌"
)

// TrollMessages are shown on the fake game-over screen
var TrollMessages = []string{
	"Você bateu? Sério? Deixa de ser ruim, cara!",
	"Minha avó joga melhor que você... e ela não tem braços.",
	"Até uma lesma se move mais rápido. E ela não tem pernas.",
	"O problema é o jogo ou a sua falta de talento?",
	"Parabéns! Você descobriu como perder! 🎉",
	"Isso não foi nem perto...",
	"Você está tentando perder de propósito?",
	"Impressionante... impressionantemente ruim.",
	"Talvez seja hora de uma pausa... permanente?",
	"Seus reflexos são mais lentos que internet discada.",
	"Isso foi doloroso de assistir.",
	"Você consegue ser pior que isso?",
	"Spoiler: sim, você consegue ser pior.",
	"Que performance... lamentável! 💀",
	"Você jogou isso com os pés?",
	"Até meu cachorro joga melhor!",
	"Isso foi um desastre épico! 🔥",
	"Você está fazendo isso de propósito?",
	"O que você está fazendo? O jogo não precisa de permissão.",
	"O jogo sentiu sua falta... mas é para você continuar jogando, não é para você morrer!",
	"Não adianta tentar trapacear! Eu sou o rei do jogo, você é apenas um plebeu.",
	"Efeitos especiais? Que nada, é só a sua tela que tá ficando velha.",
	"Eu não entendo... você quer mesmo ser um fracasso?",
}

// HelpMessages are the useless tips behind the help action
var HelpMessages = []string{
	"DICA: Não clique nos obstáculos! 🤯",
	"DICA AVANÇADA: Mova-se para não morrer!",
	"DICA PRO: Git gud.",
	"DICA SECRETA: Talvez o problema seja você...",
	"DICA FINAL: Desista enquanto ainda tem dignidade.",
	"DICA INÚTIL: Pressione Alt+F4 para super velocidade!",
	"DICA FALSA: Feche os olhos para jogar melhor!",
	"DICA TROLL: O jogo fica mais fácil se você gritar!",
}

// CollectMessages congratulate a normal pickup, grudgingly
var CollectMessages = []string{
	"Finalmente! Já tava pensando que era impossível para você.",
	"Não se acostume, foi sorte de principiante.",
}

// MotivationalMessages are rolled by the periodic taunt timer
var MotivationalMessages = []string{
	"Você ainda está tentando? Que fofo! 🥺",
	"Lembra: a desistência é sempre uma opção! 🚪",
	"Seus pais devem estar tão orgulhosos... 😬",
}

// DifficultyMessage returns the settings feedback line for a difficulty name
func DifficultyMessage(name string) string {
	switch name {
	case "easy":
		return "Modo Fácil ativado! (Mentira, agora está mais difícil!) 😈"
	case "hard":
		return "Modo Difícil! Finalmente sendo honesto! 💀"
	default:
		return "Modo Normal... se é que existe algo normal aqui! 🤔"
	}
}
