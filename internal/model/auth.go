package model

import "github.com/golang-jwt/jwt/v5"

// AssessorClaims are JWT claims for assessor authentication
type AssessorClaims struct {
	AssessorID string `json:"assessorId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for assessor login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token      string `json:"token"`
	AssessorID string `json:"assessorId"`
}
