package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"briefgen/internal/brief"
	"briefgen/internal/client"
	"briefgen/internal/provider"
	"briefgen/internal/render"
)

type clientsCmd struct {
	List   clientsListCmd   `cmd:"" default:"1" help:"List client names."`
	Show   clientsShowCmd   `cmd:"" help:"Print a client profile as JSON."`
	Create clientsCreateCmd `cmd:"" help:"Create a client profile from a JSON file."`
	Delete clientsDeleteCmd `cmd:"" help:"Delete a client profile."`
}

type clientsListCmd struct{}

func (c *clientsListCmd) Run(d *deps) error {
	names, err := d.Store.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

type clientsShowCmd struct {
	Name string `arg:"" help:"Client name."`
}

func (c *clientsShowCmd) Run(d *deps) error {
	p, err := d.Store.Get(c.Name)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type clientsCreateCmd struct {
	File string `arg:"" type:"existingfile" help:"Path to a client profile JSON file."`
}

func (c *clientsCreateCmd) Run(d *deps) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	var profile client.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("invalid profile file: %w", err)
	}
	if err := d.Store.Create(&profile); err != nil {
		return err
	}
	fmt.Printf("Client %q created\n", profile.Name)
	return nil
}

type clientsDeleteCmd struct {
	Name string `arg:"" help:"Client name."`
}

func (c *clientsDeleteCmd) Run(d *deps) error {
	if err := d.Store.Delete(c.Name); err != nil {
		return err
	}
	fmt.Printf("Client %q deleted\n", c.Name)
	return nil
}

type providersCmd struct{}

func (c *providersCmd) Run(d *deps) error {
	available := d.Registry.Available()
	if len(available) == 0 {
		return provider.ErrNoProviderAvailable
	}
	def, _ := d.Registry.Default()
	for _, id := range available {
		marker := ""
		if id == def {
			marker = " (default)"
		}
		fmt.Printf("%s%s\n", id, marker)
	}
	return nil
}

type generateCmd struct {
	Client    string   `required:"" help:"Client profile name."`
	Topic     string   `required:"" help:"Content topic."`
	Keyword   string   `required:"" help:"Primary keyword."`
	Secondary []string `help:"Secondary keywords." sep:","`
	Provider  string   `help:"AI provider (openai, claude, perplexity, mistral). Defaults to the configured default."`
	Format    string   `enum:"md,html" default:"md" help:"Output document format."`
}

func (c *generateCmd) Run(d *deps) error {
	profile, err := d.Store.Get(c.Client)
	if err != nil {
		return err
	}

	generated, err := d.Briefs.CreateBrief(context.Background(), brief.Request{
		Topic:             c.Topic,
		PrimaryKeyword:    c.Keyword,
		SecondaryKeywords: c.Secondary,
		Provider:          provider.ID(c.Provider),
		Profile:           profile,
	})
	if err != nil {
		return err
	}

	path, err := d.Writer.Write(generated, render.Format(c.Format))
	if err != nil {
		return err
	}
	fmt.Printf("Brief created: %s\n", path)
	return nil
}
