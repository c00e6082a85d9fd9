package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// Seeds a back-office user or a finance chat user.
//
//	go run ./app/cmd/add_user -email admin@example.com -password secret -first Admin -last User
//	go run ./app/cmd/add_user -chat -username accounts1 -password secret -name "Accounts Desk" -role accountant
func main() {
	chatUser := flag.Bool("chat", false, "create a finance chat user instead of a back-office user")
	email := flag.String("email", "", "email (back-office user)")
	username := flag.String("username", "", "username (chat user)")
	password := flag.String("password", "", "password")
	first := flag.String("first", "", "first name (back-office user)")
	last := flag.String("last", "", "last name (back-office user)")
	fullName := flag.String("name", "", "full name (chat user)")
	role := flag.String("role", "accountant", "chat role: admin or accountant")
	flag.Parse()

	if *password == "" {
		fmt.Println("Password is required")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	if *chatUser {
		if *username == "" {
			fmt.Println("Username is required for chat users")
			os.Exit(1)
		}
		if *role != string(models.RoleAdmin) && *role != string(models.RoleAccountant) {
			fmt.Println("Role must be admin or accountant")
			os.Exit(1)
		}

		u := &models.ChatUser{
			Username: *username,
			Password: hashed,
			FullName: *fullName,
			Role:     models.ChatRole(*role),
			Active:   true,
		}
		if err := database.CreateChatUser(db, u); err != nil {
			fmt.Printf("Error creating chat user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Chat user created: %s (%s)\n", u.Username, u.Role)
		return
	}

	if *email == "" || *first == "" || *last == "" {
		fmt.Println("Email, first and last name are required")
		os.Exit(1)
	}

	u := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *first,
		LastName:  *last,
	}
	if err := database.CreateUser(db, u); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("User created: %s %s (%s)\n", u.FirstName, u.LastName, u.Email)
}
