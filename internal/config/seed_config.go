package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SeedBranch struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type SeedUser struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Username string  `yaml:"username"`
	Password string  `yaml:"password"` //明文, 寫入db前會先bcrypt
	BranchID *string `yaml:"branch_id"`
	Role     string  `yaml:"role"`
}

type SeedConfig struct {
	Branches []SeedBranch `yaml:"branches"`
	Users    []SeedUser   `yaml:"users"`
}

func LoadSeedConfig(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &SeedConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
