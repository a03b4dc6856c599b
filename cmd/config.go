package cmd

import "fmt"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// UniqueNaturalKeys rejects registering a second book with the same
	// title and author, or a second customer with the same name and
	// address. Off by default: the store historically allowed duplicates
	// and resolves them deterministically on lookup.
	UniqueNaturalKeys bool
}

// PostgresDSN builds the connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
