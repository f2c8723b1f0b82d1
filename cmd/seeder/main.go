package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/matchbook"
	"github.com/poiesic/matchbook/core"
)

// profiles is a small demo pool of business profiles, roughly shaped
// like the membership of a local networking group.
var profiles = []*core.Profile{
	{
		Name:                 "TechGest Sistemas",
		Role:                 core.RoleMember,
		WhatISell:            "desenvolvimento de software sob demanda e sistemas de gestão empresarial",
		WhatINeed:            "serviços de contabilidade e assessoria jurídica",
		PartnershipInterests: []string{"Tecnologia", "Serviços"},
		Tags:                 []string{"Networking", "Inovação"},
	},
	{
		Name:                 "ContaCerta Contabilidade",
		Role:                 core.RoleMember,
		WhatISell:            "serviços de contabilidade fiscal e folha de pagamento",
		WhatINeed:            "sistemas de gestão empresarial e automação de processos",
		PartnershipInterests: []string{"Serviços", "Finanças"},
		Tags:                 []string{"Networking"},
	},
	{
		Name:                 "Lex Advocacia",
		Role:                 core.RoleMember,
		WhatISell:            "assessoria jurídica empresarial e contratos",
		WhatINeed:            "marketing digital e captação de clientes",
		PartnershipInterests: []string{"Serviços"},
		Tags:                 []string{"Networking", "Parcerias"},
	},
	{
		Name:                 "Pixel Marketing",
		Role:                 core.RoleMember,
		WhatISell:            "marketing digital, gestão de redes sociais e campanhas",
		WhatINeed:            "desenvolvimento de software para automação de campanhas",
		PartnershipInterests: []string{"Tecnologia", "Comunicação"},
		Tags:                 []string{"Inovação", "Parcerias"},
	},
	{
		Name:                 "LogiFrete Transportes",
		Role:                 core.RoleMember,
		WhatISell:            "transporte rodoviário de cargas e logística",
		WhatINeed:            "software de gestão de frotas e seguros",
		PartnershipInterests: []string{"Logística"},
		Tags:                 []string{"Networking"},
	},
	{
		Name:                 "Segura Corretora",
		Role:                 core.RoleMember,
		WhatISell:            "seguros empresariais, de frotas e de vida",
		WhatINeed:            "indicações de empresas de transporte e logística",
		PartnershipInterests: []string{"Finanças", "Logística"},
		Tags:                 []string{"Parcerias"},
	},
	{
		Name:                 "Sabor da Serra Alimentos",
		Role:                 core.RoleMember,
		WhatISell:            "alimentos artesanais e cestas corporativas",
		WhatINeed:            "transporte refrigerado e pontos de venda",
		PartnershipInterests: []string{"Alimentação"},
		Tags:                 []string{"Varejo"},
	},
	{
		Name:                 "Construtiva Engenharia",
		Role:                 core.RoleMember,
		WhatISell:            "projetos de engenharia civil e reformas comerciais",
		WhatINeed:            "assessoria jurídica para contratos de obra",
		PartnershipInterests: []string{"Construção"},
		Tags:                 []string{"Networking", "Parcerias"},
	},
	{
		Name:      "Secretaria do Grupo",
		Role:      core.RoleStaff,
		WhatISell: "organização de eventos e reuniões do grupo",
	},
}

var (
	dbPath  = flag.String("db", "./matchbook_db", "path to the database directory")
	subject = flag.String("subject", "TechGest Sistemas", "profile name to rank after seeding")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	db, err := matchbook.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()

	added, err := db.ProfileRepository().AddProfiles(ctx, profiles...)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded profiles", "count", len(added))

	// Rank the demo subject against the pool
	seed, err := db.ProfileRepository().FindProfileByName(ctx, *subject)
	if err != nil {
		panic(err)
	}

	matchmaker, err := db.NewMatchmaker()
	if err != nil {
		panic(err)
	}
	defer matchmaker.Release()

	results, err := matchmaker.FindMatches(ctx, seed.Id, 0)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nMatches for %s:\n", seed.Name)
	for _, result := range results {
		fmt.Printf("  [%-9s %3d] %s\n", result.Tier, result.Score, result.Profile.Name)
		for _, reason := range result.Reasons {
			fmt.Printf("        +%-3d %s: %s\n", reason.Points, reason.Label, reason.Detail)
		}
	}
}
