// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package content

var japaneseContent = LocaleContent{
	MetaTitle:       "ホーム",
	MetaDescription: "ゲーム開発の実績やツール、経験をまとめたポートフォリオサイトです。",
	HTMLLang:        "ja",
	Profile: Profile{
		Name:    "4423",
		Tagline: "ゲーム開発者 / デザイナー",
		Summary: "インディーゲームを制作しています。プログラミングからアートまで自分で手がけ、" +
			"世界観のある作品づくりを目指しています。これまでの取り組みをご紹介します。",
	},
	ContactLinks: []ContactLink{
		{Title: "X（旧Twitter）", Href: Some("https://x.com/MYosh4423"), Icon: ContactIconX},
		{Title: "Discord", Href: Some("https://discord.gg/gpdhjVCM"), Icon: ContactIconDiscord},
	},
	AboutParagraphs: []string{
		"Unity（C#）を用いたゲーム開発に加え、Clip StudioやAsepriteを活用したデジタルアート・ドット絵制作も行っています。" +
			"さらに、Pythonによる深層学習モデルの構築経験もあり、プログラミングとアートの両面からゲーム制作に取り組んでいます。",
		"下記では主な強み、使用ツール、参画したプロジェクトについて概要をまとめています。",
	},
	Specialties: []string{
		"Unityによるゲームプログラミング・システム設計",
		"UIデザイン",
		"PixelArt",
		"Pythonを利用した深層学習モデル開発",
	},
	Tools: []Tool{
		{Name: "Unity", Note: "ゲームエンジン", IconKey: ToolIconUnity},
		{Name: "Visual Studio Code", Note: "IDE", IconKey: ToolIconVSCode},
		{Name: "Clip Studio Paint", Note: "デジタルアート", IconKey: ToolIconClipStudio},
		{Name: "Aseprite", Note: "ドット絵制作", IconKey: ToolIconAseprite},
	},
	Contributions: []Contribution{
		{Title: "----", Detail: "UIプログラムサポート / 2025年"},
	},
	Languages:                []string{"C#", "Python", "C++"},
	ProgrammingLanguagesNote: "主に開発に利用している言語",
	Projects: []Project{
		{
			Title:        "Step On All Stars",
			Role:         "システム設計・デザイン / 2024年8月",
			Description:  "迫りくる隕石をよけながら、星座の形に配置される星々を踏みつける弾幕回避ゲーム",
			Href:         Some("https://myosh4423.itch.io/step-on-all-stars"),
			Thumbnail:    Some("steponallstars_title.png"),
			ThumbnailAlt: Some("steponallstars_thumbnail"),
		},
	},
	SectionTitles: SectionTitles{
		Projects:             "制作実績",
		About:                "プロフィール",
		Specialties:          "得意分野",
		Tools:                "使用ツール・エンジン",
		Contributions:        "開発参加作品",
		ProgrammingLanguages: "使用言語",
	},
}
