// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

var englishContent = LocaleContent{
	MetaTitle:       "portfolio",
	MetaDescription: "Portfolio site showcasing indie game development projects, art, and tooling.",
	HTMLLang:        "en",
	Profile: Profile{
		Name:    "4423",
		Tagline: "Game Developer / Designer",
		Summary: "I create indie games end to end, moving between programming and art to build worlds " +
			"with a distinct atmosphere. Here is a look at the projects I have been working on.",
	},
	ContactLinks: []ContactLink{
		{Title: "X (Twitter)", Href: Some("https://x.com/MYosh4423"), Icon: ContactIconX},
		{Title: "Discord", Href: Some("https://discord.gg/gpdhjVCM"), Icon: ContactIconDiscord},
	},
	AboutParagraphs: []string{
		"My core focus is Unity (C#) development, while Clip Studio and Aseprite let me create digital " +
			"and pixel art tailored to each project. I also build workflow tools and prototype " +
			"machine-learning utilities in Python, keeping programming and art tightly connected.",
		"The sections below outline my key strengths, the tools I rely on, and the projects I have contributed to.",
	},
	Specialties: []string{
		"Game programming and systems design in Unity",
		"UI design",
		"Pixel art",
		"Workflow automation and ML prototyping with Python",
	},
	Tools: []Tool{
		{Name: "Unity", Note: "Game engine", IconKey: ToolIconUnity},
		{Name: "Visual Studio Code", Note: "IDE", IconKey: ToolIconVSCode},
		{Name: "Clip Studio Paint", Note: "Digital art", IconKey: ToolIconClipStudio},
		{Name: "Aseprite", Note: "Pixel art", IconKey: ToolIconAseprite},
	},
	Contributions: []Contribution{
		{Title: "----", Detail: "UI programming support (2025)"},
	},
	Languages:                []string{"C#", "Python", "C++"},
	ProgrammingLanguagesNote: "Primary languages I rely on in development.",
	Projects: []Project{
		{
			Title: "Step On All Stars",
			Role:  "Systems design & game design / Aug 2024",
			Description: "A rhythm-infused bullet-dodging action game about weaving through falling meteors " +
				"and stomping stars arranged as constellations.",
			Href:         Some("https://myosh4423.itch.io/step-on-all-stars"),
			Thumbnail:    Some("steponallstars_title.png"),
			ThumbnailAlt: Some("Step On All Stars thumbnail"),
		},
	},
	SectionTitles: SectionTitles{
		Projects:             "Projects",
		About:                "About Me",
		Specialties:          "Specialties",
		Tools:                "Tools & Engines",
		Contributions:        "Team Contributions",
		ProgrammingLanguages: "Programming Languages",
	},
}
